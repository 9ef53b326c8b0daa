package output

import (
	"net/url"
	"strconv"

	"github.com/agentstation/birdmap/internal/cmd/emoji"
	"github.com/agentstation/birdmap/pkg/birds"
	"github.com/agentstation/birdmap/pkg/merge"
	"github.com/agentstation/birdmap/pkg/sheet"
	"github.com/agentstation/birdmap/pkg/urlfix"
)

// RecordsTable lists records with the host their image is served from.
func RecordsTable(records birds.Records) Data {
	data := Data{
		Headers:         []string{"#", "Name", "Image Host", "Direct", "Image URL"},
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignLeft, AlignCenter, AlignLeft},
	}
	for i, r := range records {
		image := r.ImageURL()
		direct := ""
		if urlfix.IsDirectHost(image) {
			direct = emoji.Success
		}
		data.Rows = append(data.Rows, []string{
			strconv.Itoa(i + 1),
			r.Name(),
			Host(image),
			direct,
			image,
		})
	}
	return data
}

// ChangesTable lists imageUrl rewrites.
func ChangesTable(changes merge.Changes) Data {
	data := Data{Headers: []string{"Name", "Old", "New"}}
	for _, c := range changes {
		data.Rows = append(data.Rows, []string{c.Name, c.Old, c.New})
	}
	return data
}

// FailuresTable lists failed resolutions.
func FailuresTable(failures []merge.Failure) Data {
	data := Data{Headers: []string{"Name", "Reason", "Error"}}
	for _, f := range failures {
		data.Rows = append(data.Rows, []string{f.Name, f.Reason, f.Error})
	}
	return data
}

// PairsTable lists spreadsheet name/value pairs.
func PairsTable(pairs []sheet.Pair, valueHeader string) Data {
	data := Data{Headers: []string{"Name", valueHeader}}
	for _, p := range pairs {
		data.Rows = append(data.Rows, []string{p.Name, p.Value})
	}
	return data
}

// ColumnsTable lists spreadsheet headers with their position.
func ColumnsTable(headers []string) Data {
	data := Data{
		Headers:         []string{"#", "Column"},
		ColumnAlignment: []Align{AlignRight, AlignLeft},
	}
	for i, h := range headers {
		data.Rows = append(data.Rows, []string{strconv.Itoa(i + 1), h})
	}
	return data
}

// Host returns the hostname of raw, or "-" when it has none.
func Host(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return "-"
	}
	return u.Hostname()
}
