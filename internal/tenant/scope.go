package tenant

import "gorm.io/gorm"

// Scope restricts a query to rows owned by tenantID. Every tenant owned
// table carries a tenant_id column.
func Scope(tenantID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_id = ?", tenantID)
	}
}

// ScopeTable is Scope for queries that join several tenant owned tables.
func ScopeTable(table, tenantID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".tenant_id = ?", tenantID)
	}
}
