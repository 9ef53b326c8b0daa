// Package constants provides shared constants used throughout the birdmap
// codebase: timeouts, file permissions, default paths, spreadsheet headers
// and the hosts the resolvers talk to.
package constants

import "time"

// Timeout constants
const (
	// DefaultHTTPTimeout bounds a single page fetch.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultDelay is the pause between successive Wikipedia fetches.
	DefaultDelay = 500 * time.Millisecond

	// WikiAvesDelayMin and WikiAvesDelayMax bound the random pause between
	// WikiAves fetches.
	WikiAvesDelayMin = 1 * time.Second
	WikiAvesDelayMax = 3 * time.Second

	// PageCacheTTL is how long a fetched page is reused within a process.
	PageCacheTTL = 10 * time.Minute
)

// File permission constants
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Default input locations.
const (
	DefaultJSONPath  = "bird_data.json"
	DefaultSheetPath = "attached_assets/aves_Toca_v2.xlsx"
	LockSuffix       = ".lock"
)

// Record field names.
const (
	FieldName         = "name"
	FieldImageURL     = "imageUrl"
	FieldWikipediaURL = "wikipediaUrl"
)

// Spreadsheet header names.
const (
	ColumnCommonName = "Nome Comum"
	ColumnPicture    = "Picture"
	ColumnLink       = "link"
)

// Remote hosts and templates.
const (
	// DirectImageHost serves media files directly.
	DirectImageHost = "upload.wikimedia.org"

	// SpecialFilePathMarker identifies the legacy lookup-by-name URL form.
	SpecialFilePathMarker = "Special:FilePath"

	// ThumbURLTemplate takes the filename, the width and the filename again.
	ThumbURLTemplate = "https://upload.wikimedia.org/wikipedia/commons/thumb/latest/%s/%dpx-%s"

	// DefaultThumbWidth is the thumbnail width used by the rewrite.
	DefaultThumbWidth = 500

	// WikiAvesBaseURL is used to absolutize relative WikiAves image paths.
	WikiAvesBaseURL = "https://www.wikiaves.com.br"
)

// User agents sent with page fetches.
const (
	ShortUserAgent   = "Mozilla/5.0"
	BrowserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// WikiAvesAcceptLanguage asks WikiAves for its Portuguese pages.
const WikiAvesAcceptLanguage = "pt-BR,pt;q=0.9"

// Limits
const (
	// PreviewRows is how many rows `sheet preview` prints by default.
	PreviewRows = 5
)
