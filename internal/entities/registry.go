// Package entities holds the generators for every table of the commerce
// schema and the dependency declarations that order them.
package entities

import (
	"github.com/Lumos-Labs-HQ/uruseed/internal/database"
	"github.com/Lumos-Labs-HQ/uruseed/internal/inventory"
	"github.com/Lumos-Labs-HQ/uruseed/internal/seeder"
)

const (
	currency = "BRL"
	timezone = "America/Sao_Paulo"
	locale   = "pt-BR"
)

var activeMostly = []string{"active", "active", "active", "inactive"}

// InventoryOptions tunes inventory_movements generation.
type InventoryOptions struct {
	OutProbability float64
	StepCap        int
	MinMovements   int
	MaxMovements   int
	BalanceUpdates inventory.BalanceUpdates
}

func DefaultInventoryOptions() InventoryOptions {
	cfg := inventory.DefaultConfig()
	return InventoryOptions{
		OutProbability: cfg.OutProbability,
		StepCap:        cfg.StepCap,
		MinMovements:   1,
		MaxMovements:   5,
		BalanceUpdates: inventory.UpdatesAuto,
	}
}

// Registry returns the generators for all tables. Order is irrelevant; the
// seeder levels them from DependsOn.
func Registry(inv InventoryOptions) []*seeder.Entity {
	return []*seeder.Entity{
		{Name: "shops", Count: 3, Generate: generateShops},
		{Name: "users", Count: 50, Generate: generateUsers},
		{Name: "roles", Count: 5, Generate: generateRoles},
		{Name: "locations", Count: 10, Generate: generateLocations},
		{Name: "modules", Generate: generateModules},
		{Name: "shop_templates", Generate: generateShopTemplates},

		{Name: "brands", DependsOn: []string{"shops"}, Count: 30, Generate: generateBrands},
		{Name: "categories", DependsOn: []string{"shops"}, Count: 50, Generate: generateCategories},
		{Name: "customer_groups", DependsOn: []string{"shops"}, Count: 10, Generate: generateCustomerGroups},
		{Name: "customers", DependsOn: []string{"customer_groups"}, Count: 500, Generate: generateCustomers},
		{Name: "products", DependsOn: []string{"categories", "brands"}, Count: 500, Generate: generateProducts},

		{Name: "customer_addresses", DependsOn: []string{"customers"}, Generate: generateCustomerAddresses},
		{Name: "customer_group_memberships", DependsOn: []string{"customers", "customer_groups"}, Generate: generateMemberships},
		{Name: "user_roles", DependsOn: []string{"users", "roles"}, Generate: generateUserRoles},
		{Name: "user_identities", DependsOn: []string{"users"}, Generate: generateUserIdentities},
		{Name: "user_sessions", DependsOn: []string{"users"}, Generate: generateUserSessions},
		{Name: "checkouts", DependsOn: []string{"shops", "users", "products"}, Count: 300, Generate: generateCheckouts},
		{Name: "product_categories", DependsOn: []string{"products", "categories"}, Generate: generateProductCategories},
		{Name: "inventory_levels", DependsOn: []string{"products", "locations"}, Count: 1500, Generate: generateInventoryLevels},
		{Name: "transactions", DependsOn: []string{"customers", "users"}, Count: 1000, Generate: generateTransactions},
		{Name: "orders", DependsOn: []string{"shops", "customers"}, Count: 800, Generate: generateOrders},

		{Name: "inquiries", DependsOn: []string{"customers", "users", "orders", "products"}, Count: 100, Generate: generateInquiries},
		{Name: "transaction_items", DependsOn: []string{"transactions", "products"}, Generate: generateTransactionItems},
		{Name: "payments", DependsOn: []string{"transactions"}, Count: 1200, Generate: generatePayments},
		{Name: "shipments", DependsOn: []string{"orders", "locations"}, Count: 600, Generate: generateShipments},
		{Name: "inquiry_messages", DependsOn: []string{"inquiries", "users"}, Generate: generateInquiryMessages},
		{Name: "reviews", DependsOn: []string{"orders", "customers", "products"}, Count: 400, Generate: generateReviews},
		{Name: "inventory_movements", DependsOn: []string{"inventory_levels", "transactions"}, Count: 500, Generate: movementGenerator(inv)},
		{Name: "refunds", DependsOn: []string{"payments", "users"}, Generate: generateRefunds},
		{Name: "shipment_items", DependsOn: []string{"shipments"}, Generate: generateShipmentItems},
		{Name: "shipment_events", DependsOn: []string{"shipments"}, Generate: generateShipmentEvents},
	}
}

// audit fills the bookkeeping columns every table carries.
func audit(g *seeder.GenerationContext, row database.Row, createdWithin int) database.Row {
	row["_status"] = "created"
	row["created_at"] = g.Timestamp(createdWithin)
	row["updated_at"] = g.Timestamp(30)
	return row
}

func limit[T any](items []T, n int) []T {
	if n < 0 || n >= len(items) {
		return items
	}
	return items[:n]
}

// nonNil keeps empty lists encoding as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func address(f *seeder.Faker, withCountry bool) map[string]string {
	a := map[string]string{
		"address1":    f.Street() + ", " + f.BuildingNumber(),
		"city":        f.City(),
		"state":       f.StateAbbr(),
		"postal_code": f.Postcode(),
	}
	if withCountry {
		a["country"] = "BR"
	}
	return a
}
