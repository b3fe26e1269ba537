/*
 * @Description: 数据库迁移服务（处理 SQL 迁移和数据更新）
 * @Author: 安知鱼
 * @Date: 2026-02-10
 */
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
)

// MigrationService 数据库迁移服务
type MigrationService struct {
	db     *sql.DB
	dbType string
}

// NewMigrationService 创建迁移服务
func NewMigrationService(db *sql.DB, dbType string) *MigrationService {
	return &MigrationService{
		db:     db,
		dbType: dbType,
	}
}

// RunMigrations 执行所有迁移
func (m *MigrationService) RunMigrations(ctx context.Context) error {
	log.Println("📋 开始执行数据库迁移...")

	// 回填事务表的 composite_key 字段
	if err := m.migrateCompositeKey(ctx); err != nil {
		return fmt.Errorf("composite_key 回填失败: %w", err)
	}

	// 检查并执行 envelope 删除标记字段迁移
	if err := m.migrateEnvelopeDeleted(ctx); err != nil {
		return fmt.Errorf("envelope deleted 字段迁移失败: %w", err)
	}

	log.Println("✅ 数据库迁移完成")
	return nil
}

// migrateCompositeKey 为历史事务行回填 composite_key。
// 早期导入的数据没有该字段，统一补成 "workbasketID-order" 的形式。
func (m *MigrationService) migrateCompositeKey(ctx context.Context) error {
	exists, err := m.columnExists(ctx, "transactions", "composite_key")
	if err != nil {
		return err
	}
	if !exists {
		// 列由 Ent Schema 迁移创建，此处不存在说明迁移顺序异常
		return fmt.Errorf("transactions.composite_key 列不存在")
	}

	var query string
	switch m.dbType {
	case "mysql", "mariadb":
		query = `
			UPDATE transactions
			SET composite_key = CONCAT(workbasket_id, '-', ` + "`order`" + `)
			WHERE composite_key IS NULL OR composite_key = ''
		`
	case "postgres":
		query = `
			UPDATE transactions
			SET composite_key = workbasket_id || '-' || "order"
			WHERE composite_key IS NULL OR composite_key = ''
		`
	case "sqlite", "sqlite3":
		query = `
			UPDATE transactions
			SET composite_key = workbasket_id || '-' || "order"
			WHERE composite_key IS NULL OR composite_key = ''
		`
	default:
		return fmt.Errorf("不支持的数据库类型: %s", m.dbType)
	}

	result, err := m.db.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("回填 composite_key 失败: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n > 0 {
		log.Printf("  ✓ 已回填 %d 条事务的 composite_key", n)
	}
	return nil
}

// migrateEnvelopeDeleted 迁移 envelope 的删除标记字段
func (m *MigrationService) migrateEnvelopeDeleted(ctx context.Context) error {
	exists, err := m.columnExists(ctx, "envelopes", "deleted")
	if err != nil {
		return err
	}
	if exists {
		log.Println("  ✓ deleted 字段已存在，跳过迁移")
		return nil
	}

	log.Println("  → 添加 deleted 字段...")

	switch m.dbType {
	case "mysql", "mariadb":
		_, err = m.db.ExecContext(ctx, `
			ALTER TABLE envelopes
			ADD COLUMN deleted BOOLEAN NOT NULL DEFAULT FALSE COMMENT '删除标记' AFTER xml_file
		`)
		if err != nil {
			return fmt.Errorf("添加 deleted 字段失败: %w", err)
		}

		_, err = m.db.ExecContext(ctx, `
			CREATE INDEX idx_envelopes_deleted ON envelopes(deleted)
		`)
		if err != nil && !strings.Contains(err.Error(), "Duplicate key name") {
			return fmt.Errorf("创建 deleted 索引失败: %w", err)
		}

	case "postgres":
		_, err = m.db.ExecContext(ctx, `
			ALTER TABLE envelopes
			ADD COLUMN IF NOT EXISTS deleted BOOLEAN NOT NULL DEFAULT FALSE
		`)
		if err != nil {
			return fmt.Errorf("添加 deleted 字段失败: %w", err)
		}

		_, err = m.db.ExecContext(ctx, `
			CREATE INDEX IF NOT EXISTS idx_envelopes_deleted ON envelopes(deleted)
		`)
		if err != nil {
			return fmt.Errorf("创建 deleted 索引失败: %w", err)
		}

	case "sqlite", "sqlite3":
		_, err = m.db.ExecContext(ctx, `
			ALTER TABLE envelopes
			ADD COLUMN deleted BOOLEAN NOT NULL DEFAULT 0
		`)
		if err != nil {
			return fmt.Errorf("添加 deleted 字段失败: %w", err)
		}

		_, err = m.db.ExecContext(ctx, `
			CREATE INDEX IF NOT EXISTS idx_envelopes_deleted ON envelopes(deleted)
		`)
		if err != nil {
			return fmt.Errorf("创建 deleted 索引失败: %w", err)
		}
	}

	log.Println("  ✓ deleted 字段迁移完成")
	return nil
}

// columnExists 检查列是否存在
func (m *MigrationService) columnExists(ctx context.Context, tableName, columnName string) (bool, error) {
	var query string
	var args []interface{}

	switch m.dbType {
	case "mysql", "mariadb":
		query = `
			SELECT COUNT(*)
			FROM INFORMATION_SCHEMA.COLUMNS
			WHERE TABLE_SCHEMA = DATABASE()
			AND TABLE_NAME = ?
			AND COLUMN_NAME = ?
		`
		args = []interface{}{tableName, columnName}

	case "postgres":
		query = `
			SELECT COUNT(*)
			FROM information_schema.columns
			WHERE table_name = $1
			AND column_name = $2
		`
		args = []interface{}{tableName, columnName}

	case "sqlite", "sqlite3":
		query = `
			SELECT COUNT(*)
			FROM pragma_table_info(?)
			WHERE name = ?
		`
		args = []interface{}{tableName, columnName}

	default:
		return false, fmt.Errorf("不支持的数据库类型: %s", m.dbType)
	}

	var count int
	err := m.db.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
