package entities

import (
	"context"

	"github.com/Lumos-Labs-HQ/uruseed/internal/database"
	"github.com/Lumos-Labs-HQ/uruseed/internal/seeder"
)

var shopSeeds = []struct{ name, slug string }{
	{"Loja Principal", "loja-principal"},
	{"Filial Centro", "filial-centro"},
	{"Filial Shopping", "filial-shopping"},
}

func generateShops(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	for _, s := range shopSeeds {
		row := database.Row{
			"name":            s.name,
			"legal_name":      s.name + " LTDA",
			"slug":            s.slug,
			"status":          "active",
			"features_config": seeder.JSON(map[string]bool{"inventory": true, "orders": true, "customers": true}),
			"mail_config":     seeder.JSON(map[string]interface{}{"smtp_host": "smtp.example.com", "smtp_port": 587}),
			"storage_config":  seeder.JSON(map[string]string{"provider": "local", "path": "/storage"}),
			"settings":        seeder.JSON(map[string]string{"theme": "light", "language": "pt-BR"}),
			"branding":        seeder.JSON(map[string]interface{}{"primary_color": "#3B82F6", "logo_url": nil}),
			"currency":        currency,
			"timezone":        timezone,
			"locale":          locale,
			"owner_id":        nil,
		}
		if err := t.Create(ctx, g.UUID(), audit(g, row, 365)); err != nil {
			return err
		}
	}
	return nil
}

var roleSeeds = []struct {
	name        string
	permissions []string
}{
	{"admin", []string{"all"}},
	{"manager", []string{"read", "write", "delete", "manage_staff"}},
	{"staff", []string{"read", "write"}},
	{"viewer", []string{"read"}},
	{"cashier", []string{"read", "write", "process_payments"}},
}

func generateRoles(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	for _, r := range roleSeeds {
		row := database.Row{
			"name":        r.name,
			"permissions": seeder.JSON(r.permissions),
		}
		if err := t.Create(ctx, g.UUID(), audit(g, row, 365)); err != nil {
			return err
		}
	}
	return nil
}

var locationSeeds = []struct{ name, kind string }{
	{"Depósito Central", "warehouse"},
	{"Loja Matriz", "store"},
	{"Loja Centro", "store"},
	{"Loja Shopping Norte", "store"},
	{"Loja Shopping Sul", "store"},
	{"Em Trânsito", "transit"},
	{"Depósito Secundário", "warehouse"},
	{"Ponto de Coleta 1", "store"},
	{"Ponto de Coleta 2", "store"},
	{"Estoque Virtual", "virtual"},
}

func generateLocations(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	f := g.Fake()
	for _, l := range limit(locationSeeds, t.Count) {
		address := map[string]string{
			"street":      f.Street() + ", " + f.BuildingNumber(),
			"city":        f.City(),
			"state":       f.StateAbbr(),
			"postal_code": f.Postcode(),
			"country":     "BR",
		}
		row := database.Row{
			"name":         l.name,
			"type":         l.kind,
			"is_sellable":  l.kind == "warehouse" || l.kind == "store",
			"address_data": seeder.JSON(address),
		}
		if err := t.Create(ctx, g.UUID(), audit(g, row, 365)); err != nil {
			return err
		}
	}
	return nil
}

type moduleSeed struct {
	id, code, name, description, category string
	core                                  bool
	requires, tables                      []string
}

var moduleSeeds = []moduleSeed{
	{"mod-products", "products", "Produtos", "Catálogo de produtos e serviços", "core", true, nil, []string{"products", "brands", "categories", "product_categories"}},
	{"mod-customers", "customers", "Clientes", "Gerenciamento de clientes", "core", true, nil, []string{"customers", "customer_addresses", "customer_groups", "customer_group_memberships"}},
	{"mod-transactions", "transactions", "Transações", "Registro de transações financeiras", "core", true, nil, []string{"transactions", "transaction_items"}},
	{"mod-orders", "orders", "Pedidos", "Gerenciamento de pedidos", "core", true, nil, []string{"orders"}},
	{"mod-payments", "payments", "Pagamentos", "Processamento de pagamentos", "core", true, nil, []string{"payments", "refunds"}},
	{"mod-shipping", "shipping", "Entrega", "Gerenciamento de entregas e frete", "logistics", false, []string{"orders"}, []string{"shipments", "shipment_items", "shipment_events"}},
	{"mod-inventory", "inventory", "Estoque", "Controle de estoque e inventário", "logistics", false, []string{"products"}, []string{"inventory_levels", "inventory_movements"}},
	{"mod-locations", "locations", "Locais", "Gerenciamento de locais e depósitos", "logistics", false, nil, []string{"locations"}},
	{"mod-checkout", "checkout", "Checkout", "Carrinho de compras e checkout", "sales", false, []string{"products", "customers"}, []string{"checkouts"}},
	{"mod-pos", "pos", "Ponto de Venda", "Sistema de ponto de venda (PDV)", "sales", false, []string{"transactions", "inventory"}, nil},
	{"mod-reviews", "reviews", "Avaliações", "Sistema de avaliações e reviews", "marketing", false, []string{"orders", "products", "customers"}, []string{"reviews"}},
	{"mod-inquiries", "inquiries", "Atendimento", "Sistema de atendimento ao cliente (SAC)", "marketing", false, []string{"customers"}, []string{"inquiries"}},
}

func generateModules(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	for _, m := range moduleSeeds {
		row := database.Row{
			"code":             m.code,
			"name":             m.name,
			"description":      m.description,
			"category":         m.category,
			"is_core":          m.core,
			"tables_used":      seeder.JSON(nonNil(m.tables)),
			"required_modules": seeder.JSON(nonNil(m.requires)),
			"conflicts_with":   "[]",
			"version":          "1.0.0",
			"metadata":         "{}",
		}
		if err := t.Create(ctx, m.id, audit(g, row, 365)); err != nil {
			return err
		}
	}
	return nil
}

type templateSeed struct {
	id, code, name, description, category string
	features                              map[string]bool
	settings                              map[string]interface{}
	modules                               []string
}

// features enables the listed modules and disables the rest of the catalogue.
func features(enabled ...string) map[string]bool {
	all := []string{"products", "customers", "transactions", "orders", "payments", "shipping", "checkout", "inventory", "pos", "locations", "inquiries", "reviews"}
	m := make(map[string]bool, len(all))
	for _, name := range all {
		m[name] = false
	}
	for _, name := range enabled {
		m[name] = true
	}
	return m
}

var coreFeatures = []string{"products", "customers", "transactions", "orders", "payments"}

var templateSeeds = []templateSeed{
	{
		"tpl-online-store", "online_store", "Loja Virtual", "Loja online com checkout, estoque e entregas", "ecommerce",
		features(append(coreFeatures, "shipping", "checkout", "inventory", "inquiries", "reviews")...),
		map[string]interface{}{"allow_guest_checkout": true, "require_shipping": true},
		[]string{"shipping", "checkout", "inventory", "reviews", "inquiries"},
	},
	{
		"tpl-physical-store", "physical_store", "Loja Física", "Loja física com PDV e controle de estoque", "retail",
		features(append(coreFeatures, "pos", "inventory", "locations", "inquiries")...),
		map[string]interface{}{"require_shipping": false, "allow_offline_sales": true},
		[]string{"pos", "inventory", "locations"},
	},
	{
		"tpl-marketplace", "marketplace", "Marketplace", "Marketplace multi-vendedor completo", "ecommerce",
		features(append(coreFeatures, "shipping", "checkout", "inventory", "locations", "inquiries", "reviews")...),
		map[string]interface{}{"multi_vendor": true, "allow_guest_checkout": true, "require_shipping": true},
		[]string{"shipping", "checkout", "inventory", "locations", "reviews", "inquiries"},
	},
	{
		"tpl-hybrid-store", "hybrid_store", "Loja Híbrida", "Loja física e virtual com todos os recursos", "retail",
		features(append(coreFeatures, "shipping", "checkout", "inventory", "pos", "locations", "inquiries", "reviews")...),
		map[string]interface{}{"allow_guest_checkout": true, "require_shipping": true, "allow_offline_sales": true},
		[]string{"shipping", "checkout", "inventory", "pos", "locations", "reviews", "inquiries"},
	},
	{
		"tpl-consulting", "consulting", "Consultoria", "Serviços e consultoria sem necessidade de estoque ou entrega", "services",
		features(append(coreFeatures, "inquiries")...),
		map[string]interface{}{"product_type_default": "service", "require_shipping": false},
		[]string{"inquiries"},
	},
	{
		"tpl-online-education", "online_education", "Aula Virtual", "Plataforma de educação e cursos online", "education",
		features(append(coreFeatures, "checkout", "inquiries", "reviews")...),
		map[string]interface{}{"product_type_default": "digital", "require_shipping": false, "allow_guest_checkout": false},
		[]string{"checkout", "reviews", "inquiries"},
	},
}

func generateShopTemplates(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	for _, tpl := range templateSeeds {
		row := database.Row{
			"code":                tpl.code,
			"name":                tpl.name,
			"description":         tpl.description,
			"category":            tpl.category,
			"features_config":     seeder.JSON(tpl.features),
			"default_settings":    seeder.JSON(tpl.settings),
			"recommended_modules": seeder.JSON(tpl.modules),
			"metadata":            "{}",
		}
		if err := t.Create(ctx, tpl.id, audit(g, row, 365)); err != nil {
			return err
		}
	}
	return nil
}

func generateUsers(ctx context.Context, t *seeder.Task) error {
	g := t.Gen
	f := g.Fake()
	for i := 0; i < t.Count; i++ {
		row := database.Row{
			"email":                 f.Email(),
			"phone":                 f.CellPhone(),
			"password_hash":         "$argon2id$v=19$m=65536,t=3,p=4$" + f.SHA256()[:22],
			"security_stamp":        g.UUID(),
			"is_email_verified":     g.Bool(),
			"is_phone_verified":     g.Bool(),
			"failed_login_attempts": g.IntRange(0, 3),
			"lockout_end_at":        nil,
			"mfa_enabled":           false,
			"mfa_secret":            nil,
			"mfa_backup_codes":      nil,
			"last_login_at":         g.Maybe(0.7, func() interface{} { return g.Timestamp(30) }),
			"last_login_ip":         g.Maybe(0.7, func() interface{} { return f.IPv4() }),
			"profile_type":          seeder.Choice(g, []string{"admin", "staff", "manager"}),
			"status":                seeder.Choice(g, activeMostly),
		}
		if err := t.Create(ctx, g.UUID(), audit(g, row, 365)); err != nil {
			return err
		}
	}
	return nil
}
