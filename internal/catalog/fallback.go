package catalog

import "github.com/sorvetes-mauriti/api/internal/domain"

// FallbackProducts is the embedded catalog used when the live source is
// unreachable, slow, or empty. It mirrors the production price sheet and
// spans all five sections.
func FallbackProducts() []domain.Product {
	out := make([]domain.Product, len(fallbackProducts))
	copy(out, fallbackProducts)
	return out
}

var fallbackProducts = []domain.Product{
	// Picolés
	{ID: "1", Name: "Picolé de Limão", Category: "Picolé", Image: fbImg("picole-limao")},
	{ID: "2", Name: "Picolé de Morango", Category: "Picolé", Image: fbImg("picole-morango")},
	{ID: "3", Name: "Picolé de Coco", Category: "Picolé", Image: fbImg("picole-coco")},
	{ID: "4", Name: "Picolé de Goiaba", Category: "Picolé", Image: fbImg("picole-goiaba")},
	{ID: "5", Name: "Picolé de Manga", Category: "Picolé", Image: fbImg("picole-manga")},
	{ID: "6", Name: "Picolé de Maracujá", Category: "Picolé", Image: fbImg("picole-maracuja")},
	{ID: "7", Name: "Picolé de Abacaxi", Category: "Picolé", Image: fbImg("picole-abacaxi")},
	{ID: "8", Name: "Picolé de Caju", Category: "Picolé", Image: fbImg("picole-caju"), Tag: "Regional"},
	{ID: "9", Name: "Picolé de Graviola", Category: "Picolé", Image: fbImg("picole-graviola")},
	{ID: "10", Name: "Picolé de Tamarindo", Category: "Picolé", Image: fbImg("picole-tamarindo"), Tag: "Regional"},
	{ID: "11", Name: "Picolé de Umbu", Category: "Picolé", Image: fbImg("picole-umbu"), Tag: "Regional"},
	{ID: "12", Name: "Picolé de Seriguela", Category: "Picolé", Image: fbImg("picole-seriguela")},
	{ID: "13", Name: "Picolé de Cajá", Category: "Picolé", Image: fbImg("picole-caja")},
	{ID: "14", Name: "Picolé de Acerola", Category: "Picolé", Image: fbImg("picole-acerola")},
	{ID: "15", Name: "Picolé de Uva", Category: "Picolé", Image: fbImg("picole-uva")},
	{ID: "16", Name: "Picolé de Chocolate", Category: "Picolé", Image: fbImg("picole-chocolate"), Tag: "Mais vendido"},
	{ID: "17", Name: "Picolé de Leite Condensado", Category: "Picolé", Image: fbImg("picole-leite-condensado")},
	{ID: "18", Name: "Picolé de Milho Verde", Category: "Picolé", Image: fbImg("picole-milho-verde")},
	{ID: "19", Name: "Picolé de Amendoim", Category: "Picolé", Image: fbImg("picole-amendoim")},
	{ID: "20", Name: "Picolé de Paçoca", Category: "Picolé", Image: fbImg("picole-pacoca")},
	{ID: "21", Name: "Picolé de Coco Queimado", Category: "Picolé", Image: fbImg("picole-coco-queimado")},
	{ID: "22", Name: "Picolé de Ninho com Nutella", Category: "Picolé", Image: fbImg("picole-ninho-nutella"), Tag: "Novidade"},
	{ID: "23", Name: "Picolé de Abacate", Category: "Picolé", Image: fbImg("picole-abacate")},
	{ID: "24", Name: "Picolé de Banana", Category: "Picolé", Image: fbImg("picole-banana")},
	{ID: "25", Name: "Picolé de Mangaba", Category: "Picolé", Image: fbImg("picole-mangaba"), Tag: "Regional"},
	{ID: "26", Name: "Picolé de Pitanga", Category: "Picolé", Image: fbImg("picole-pitanga")},
	{ID: "27", Name: "Picolé de Cupuaçu", Category: "Picolé", Image: fbImg("picole-cupuacu")},
	{ID: "28", Name: "Picolé ao Leite de Morango", Category: "Picolé", Image: fbImg("picole-leite-morango")},

	// Potes de 2 litros
	{ID: "29", Name: "Pote 2L Napolitano", Category: "Pote", Image: fbImg("pote-napolitano")},
	{ID: "30", Name: "Pote 2L Chocolate", Category: "Pote", Image: fbImg("pote-chocolate"), Tag: "Mais vendido"},
	{ID: "31", Name: "Pote 2L Creme", Category: "Pote", Image: fbImg("pote-creme")},
	{ID: "32", Name: "Pote 2L Morango", Category: "Pote", Image: fbImg("pote-morango")},
	{ID: "33", Name: "Pote 2L Flocos", Category: "Pote", Image: fbImg("pote-flocos")},
	{ID: "34", Name: "Pote 2L Coco", Category: "Pote", Image: fbImg("pote-coco")},
	{ID: "35", Name: "Pote 2L Maracujá", Category: "Pote", Image: fbImg("pote-maracuja")},
	{ID: "36", Name: "Pote 2L Abacaxi ao Vinho", Category: "Pote", Image: fbImg("pote-abacaxi-vinho")},
	{ID: "37", Name: "Pote 2L Passas ao Rum", Category: "Pote", Image: fbImg("pote-passas-rum")},
	{ID: "38", Name: "Pote 2L Chiclete", Category: "Pote", Image: fbImg("pote-chiclete")},
	{ID: "39", Name: "Pote 2L Milho Verde", Category: "Pote", Image: fbImg("pote-milho-verde")},
	{ID: "40", Name: "Pote 2L Brigadeiro", Category: "Pote", Image: fbImg("pote-brigadeiro")},

	// Açaí
	{ID: "41", Name: "Açaí 1L", Category: "Açaí", Image: fbImg("acai-1l"), Tag: "Mais vendido"},
	{ID: "42", Name: "Açaí 2L", Category: "Açaí", Image: fbImg("acai-2l")},
	{ID: "43", Name: "Açaí com Banana 1L", Category: "Açaí", Image: fbImg("acai-banana")},
	{ID: "44", Name: "Açaí com Morango 1L", Category: "Açaí", Image: fbImg("acai-morango")},
	{ID: "45", Name: "Açaí Zero Açúcar 1L", Category: "Açaí", Image: fbImg("acai-zero")},
	{ID: "46", Name: "Açaí Copo 300ml", Category: "Açaí", Image: fbImg("acai-copo")},

	// Linha gourmet
	{ID: "47", Name: "Gourmet Pistache", Category: "Gourmet", Image: fbImg("gourmet-pistache"), Tag: "Novidade"},
	{ID: "48", Name: "Gourmet Ferrero", Category: "Gourmet", Image: fbImg("gourmet-ferrero")},
	{ID: "49", Name: "Gourmet Ninho Trufado", Category: "Gourmet", Image: fbImg("gourmet-ninho-trufado")},
	{ID: "50", Name: "Gourmet Cheesecake de Frutas Vermelhas", Category: "Gourmet", Image: fbImg("gourmet-cheesecake")},
	{ID: "51", Name: "Gourmet Doce de Leite Argentino", Category: "Gourmet", Image: fbImg("gourmet-doce-leite")},
	{ID: "52", Name: "Gourmet Cocada Cremosa", Category: "Gourmet", Image: fbImg("gourmet-cocada")},
	{ID: "53", Name: "Gourmet Torta de Limão", Category: "Gourmet", Image: fbImg("gourmet-torta-limao")},
	{ID: "54", Name: "Gourmet Brownie com Avelã", Category: "Gourmet", Image: fbImg("gourmet-brownie")},

	// Gelo sabor
	{ID: "55", Name: "Gelo Sabor Energético", Category: "Gelo", Image: fbImg("gelo-energetico"), Tag: "Novidade"},
	{ID: "56", Name: "Gelo Sabor Coco", Category: "Gelo", Image: fbImg("gelo-coco")},
	{ID: "57", Name: "Gelo Sabor Limão", Category: "Gelo", Image: fbImg("gelo-limao")},
	{ID: "58", Name: "Gelo Sabor Maracujá", Category: "Gelo", Image: fbImg("gelo-maracuja")},
}

func fbImg(slug string) string {
	return "https://res.cloudinary.com/domma0qk3/image/upload/mauriti/" + slug + ".jpg"
}
