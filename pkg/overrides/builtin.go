package overrides

// Wikimedia maps birds whose scraped images were wrong or missing to
// hand-picked files on the direct media host.
var Wikimedia = map[string]string{
	"Saíra-sete-cores":         "https://upload.wikimedia.org/wikipedia/commons/4/4b/Tangara_seledon_Itamambuca_Eco_Resort.jpg",
	"Capitão-de-saíra":         "https://upload.wikimedia.org/wikipedia/commons/9/9b/Attila_rufus_-_Rufous-tailed_Attila.jpg",
	"Tiê-preto":                "https://upload.wikimedia.org/wikipedia/commons/f/ff/Tachyphonus_coronatus.jpg",
	"Tiê-sangue":               "https://upload.wikimedia.org/wikipedia/commons/e/ea/Ramphocelus_bresilius_-_Braziliaanse_tangare_-_male_-_Brazil.jpg",
	"Tiê-de-bando":             "https://upload.wikimedia.org/wikipedia/commons/1/11/Habia_rubica.JPG",
	"Ferro-velho":              "https://upload.wikimedia.org/wikipedia/commons/0/08/Euphonia_pectoralis_4.jpg",
	"Sanhaço-de-encontro-azul": "https://upload.wikimedia.org/wikipedia/commons/f/fc/Tangara_cyanoptera_-_Blue-winged_Mountain-tanager.jpg",
	"Gavião asa de telha":      "https://upload.wikimedia.org/wikipedia/commons/a/a0/Parabuteo_unicinctus_-falconry_display-8a.jpg",
}

// WikiAves maps problem birds to photos hosted by WikiAves.
var WikiAves = map[string]string{
	"Saíra-sete-cores":     "https://s3.amazonaws.com/media.wikiaves.com.br/images/5195/1649395_7d9fa3af51e7b71d5a1a96eb61d4eb64.jpg",
	"Saíra-militar":        "https://s3.amazonaws.com/media.wikiaves.com.br/images/9023/2290326_5dbe64d37dfa518a4775f53c42d3b8f7.jpg",
	"Saí-verde":            "https://s3.amazonaws.com/media.wikiaves.com.br/images/8422/2248061_2ba255b7f01a9827a819eab2c40ae7ec.jpg",
	"Saí-azul":             "https://s3.amazonaws.com/media.wikiaves.com.br/images/7012/2141274_7cc4be76f7ec7d0f7ce14e71f8b5ffad.jpg",
	"Sanhaço-do-coqueiro":  "https://s3.amazonaws.com/media.wikiaves.com.br/images/7399/1869991_45a2d2f2a06ecf09a4cee7dfd3c3fcbe.jpg",
	"Capitão-de-saíra":     "https://s3.amazonaws.com/media.wikiaves.com.br/images/6591/1919918_00aa2d0bd6c6fe31d0a5ac44b90ad532.jpg",
	"Tiê-preto":            "https://s3.amazonaws.com/media.wikiaves.com.br/images/6423/2162320_cd5acaa2d3bff8d5d85dc9b027aa85ad.jpg",
	"Gavião-pombo-pequeno": "https://s3.amazonaws.com/media.wikiaves.com.br/images/6819/1701988_80c20cf1e81d9d74dbd7f8e55c3deec2.jpg",
}
