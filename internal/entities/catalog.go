package entities

import (
	"context"
	"fmt"
	"strings"

	"github.com/Lumos-Labs-HQ/uruseed/internal/database"
	"github.com/Lumos-Labs-HQ/uruseed/internal/seeder"
)

var brandNames = []string{
	"TechPro", "EcoVida", "StyleMax", "PowerTools", "NaturaCare", "UrbanWear", "HomePlus", "FitLife",
	"SmartGear", "PureEssence", "ModernLiving", "ActiveSport", "GreenChoice", "LuxuryLine", "BasicBest",
	"PremiumSelect", "ValueMart", "TrendyStyle", "ClassicTouch", "InnovateTech", "QualityFirst", "BudgetSmart",
	"EliteCollection", "SimpleLife", "ProSeries", "EverydayEssentials", "TopChoice", "BestValue",
	"PrimeSelection", "UltraQuality",
}

func generateBrands(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	f := g.Fake()
	shops, err := t.Pools.Require("shops")
	if err != nil {
		return err
	}

	var slugs seeder.SlugSequence
	for i, name := range limit(brandNames, t.Count) {
		shopID := shops.Pick()
		slug := slugs.Next(name)
		row := database.Row{
			"shop_id":          shopID,
			"name":             name,
			"slug":             slug,
			"logo_url":         g.Maybe(0.7, func() interface{} { return "https://cdn.example.com/brands/" + slug + "/logo.png" }),
			"banner_url":       g.Maybe(0.5, func() interface{} { return "https://cdn.example.com/brands/" + slug + "/banner.jpg" }),
			"description":      f.Paragraph(2),
			"rich_description": "<p>" + f.Paragraph(4) + "</p>",
			"website_url":      g.Maybe(0.6, func() interface{} { return "https://www." + slug + ".com.br" }),
			"status":           seeder.Choice(g, activeMostly),
			"is_featured":      g.Chance(0.2),
			"sort_order":       i,
			"seo_title":        name + " - Produtos de Qualidade",
			"seo_keywords":     seeder.JSON([]string{strings.ToLower(name), "qualidade", "confiança"}),
			"metadata":         seeder.JSON(map[string]interface{}{"origin_country": "BR", "founded_year": g.IntRange(1990, 2020)}),
		}
		if err := t.Create(ctx, g.UUID(), audit(g, row, 365)); err != nil {
			return err
		}
	}
	return nil
}

var categoryTree = []struct {
	name string
	subs []string
}{
	{"Eletrônicos", []string{"Smartphones", "Notebooks", "TVs", "Acessórios", "Áudio"}},
	{"Vestuário", []string{"Masculino", "Feminino", "Infantil", "Calçados", "Acessórios"}},
	{"Casa e Decoração", []string{"Móveis", "Iluminação", "Cozinha", "Banheiro", "Jardim"}},
	{"Esportes", []string{"Fitness", "Futebol", "Natação", "Ciclismo", "Camping"}},
	{"Beleza e Saúde", []string{"Skincare", "Maquiagem", "Cabelos", "Perfumes", "Suplementos"}},
	{"Alimentos", []string{"Orgânicos", "Bebidas", "Snacks", "Congelados", "Importados"}},
	{"Livros", []string{"Ficção", "Técnicos", "Infantis", "Autoajuda", "Acadêmicos"}},
	{"Brinquedos", []string{"Educativos", "Jogos", "Bonecas", "Carrinhos", "Eletrônicos"}},
	{"Ferramentas", []string{"Manuais", "Elétricas", "Jardinagem", "Medição", "Segurança"}},
	{"Automotivo", []string{"Peças", "Acessórios", "Limpeza", "Áudio", "Iluminação"}},
}

// generateCategories writes the top level first, then subcategories that
// point at parents created earlier in the same pass, until Count is reached.
func generateCategories(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	f := g.Fake()
	shops, err := t.Pools.Require("shops")
	if err != nil {
		return err
	}

	var slugs seeder.SlugSequence
	parents := make(map[string]string, len(categoryTree))
	generated := 0

	for i, main := range categoryTree {
		if generated >= t.Count {
			break
		}
		id := g.UUID()
		parents[main.name] = id
		shopID := shops.Pick()
		slug := slugs.Next(main.name)
		row := database.Row{
			"shop_id":         shopID,
			"parent_id":       nil,
			"name":            main.name,
			"slug":            slug,
			"description":     f.Paragraph(2),
			"image_url":       "https://cdn.example.com/categories/" + slug + ".jpg",
			"banner_url":      g.Maybe(0.5, func() interface{} { return "https://cdn.example.com/categories/" + slug + "-banner.jpg" }),
			"type":            "manual",
			"rules":           "[]",
			"is_visible":      true,
			"sort_order":      i,
			"seo_title":       main.name + " - Melhores Ofertas",
			"seo_description": "Encontre os melhores produtos de " + main.name,
			"template_suffix": nil,
			"metadata":        seeder.JSON(map[string]string{"icon": "folder"}),
		}
		if err := t.Create(ctx, id, audit(g, row, 365)); err != nil {
			return err
		}
		generated++
	}

	for _, main := range categoryTree {
		parentID, ok := parents[main.name]
		if !ok {
			continue
		}
		for j, sub := range main.subs {
			if generated >= t.Count {
				return nil
			}
			id := g.UUID()
			shopID := shops.Pick()
			slug := slugs.Next(main.name + "-" + sub)
			row := database.Row{
				"shop_id":         shopID,
				"parent_id":       parentID,
				"name":            sub,
				"slug":            slug,
				"description":     f.Paragraph(1),
				"image_url":       g.Maybe(0.7, func() interface{} { return "https://cdn.example.com/categories/" + slug + ".jpg" }),
				"banner_url":      nil,
				"type":            "manual",
				"rules":           "[]",
				"is_visible":      true,
				"sort_order":      j,
				"seo_title":       sub + " em " + main.name,
				"seo_description": "Produtos de " + sub,
				"template_suffix": nil,
				"metadata":        seeder.JSON(map[string]string{"parent_name": main.name}),
			}
			if err := t.Create(ctx, id, audit(g, row, 300)); err != nil {
				return err
			}
			generated++
		}
	}
	return nil
}

var (
	productTypes    = []string{"physical", "physical", "physical", "digital", "service", "bundle"}
	productStatuses = []string{"active", "active", "active", "draft", "archived"}
	productAdjs     = []string{"Premium", "Básico", "Pro", "Ultra", "Mini", "Max", "Plus", "Lite", "Smart", "Classic"}
	productNouns    = []string{
		"Smartphone", "Notebook", "Câmera", "Fone", "Relógio", "Tablet", "Monitor", "Teclado", "Mouse",
		"Caixa de Som", "Carregador", "Cabo USB", "Capa", "Película", "Suporte", "Hub", "Adaptador", "Bateria",
		"Memória", "SSD", "Camiseta", "Calça", "Tênis", "Mochila", "Bolsa", "Carteira", "Óculos", "Chapéu",
		"Luva", "Cachecol",
	}
	productColors = []string{"Preto", "Branco", "Azul", "Vermelho", "Verde"}
	productSizes  = []string{"P", "M", "G", "GG", "U"}
)

func generateProducts(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	categories, err := t.Pools.Optional("categories")
	if err != nil {
		return err
	}
	brands, err := t.Pools.Optional("brands")
	if err != nil {
		return err
	}

	var slugs seeder.SlugSequence
	for i := 0; i < t.Count; i++ {
		name := fmt.Sprintf("%s %s %d", seeder.Choice(g, productAdjs), seeder.Choice(g, productNouns), g.IntRange(100, 999))
		kind := seeder.Choice(g, productTypes)
		physical := kind == "physical"
		price := g.Amount(10, 5000)

		dimension := func(lo, hi int) int {
			if !physical {
				return 0
			}
			return g.IntRange(lo, hi)
		}

		row := database.Row{
			"sku":               fmt.Sprintf("SKU-%06d", i),
			"type":              kind,
			"status":            seeder.Choice(g, productStatuses),
			"name":              name,
			"slug":              slugs.Next(name),
			"gtin_ean":          g.Maybe(0.5, func() interface{} { return fmt.Sprintf("%013d", g.IntRange(1000000000000, 9999999999999)) }),
			"price":             price,
			"promotional_price": g.Maybe(0.3, func() interface{} { return seeder.Rate(price, g.Uniform(0.7, 0.95)) }),
			"cost_price":        g.Maybe(0.6, func() interface{} { return seeder.Rate(price, g.Uniform(0.3, 0.6)) }),
			"currency":          currency,
			"tax_ncm": g.Maybe(0.5, func() interface{} {
				return fmt.Sprintf("%02d.%02d.%02d", g.IntRange(1, 99), g.IntRange(1, 99), g.IntRange(1, 99))
			}),
			"is_shippable": physical,
			"weight_g":     dimension(100, 50000),
			"width_mm":     dimension(50, 1000),
			"height_mm":    dimension(50, 500),
			"depth_mm":     dimension(50, 500),
			"attributes":   seeder.JSON(map[string]string{"color": seeder.Choice(g, productColors), "size": seeder.Choice(g, productSizes)}),
			"metadata":     seeder.JSON(map[string]int{"warranty_months": seeder.Choice(g, []int{3, 6, 12, 24})}),
			"category_id":  categories.PickOrAbsent(0.1),
			"brand_id":     brands.PickOrAbsent(0.2),
			"parent_id":    nil,
		}
		if err := t.Create(ctx, g.UUID(), audit(g, row, 365)); err != nil {
			return err
		}
	}
	return nil
}

func generateProductCategories(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	products, err := t.Pools.Optional("products")
	if err != nil {
		return err
	}
	categories, err := t.Pools.Optional("categories")
	if err != nil {
		return err
	}

	for _, productID := range products.Share(0.8) {
		for pos, categoryID := range categories.PickUpTo(g.IntRange(1, 3)) {
			row := database.Row{
				"product_id":  productID,
				"category_id": categoryID,
				"position":    pos,
			}
			if err := t.Link(ctx, audit(g, row, 300)); err != nil {
				return err
			}
		}
	}
	return nil
}
