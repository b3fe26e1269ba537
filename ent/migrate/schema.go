// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EnvelopesColumns holds the columns for the "envelopes" table.
	EnvelopesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "envelope_id", Type: field.TypeString, Unique: true, Size: 6, Comment: "YYNNNN：两位年份+当年四位序号"},
		{Name: "xml_file", Type: field.TypeString, Comment: "导出文件的存储路径", Default: ""},
		{Name: "deleted", Type: field.TypeBool, Comment: "删除标记，文件无法立即物理删除时置位", Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EnvelopesTable holds the schema information for the "envelopes" table.
	EnvelopesTable = &schema.Table{
		Name:       "envelopes",
		Comment:    "已生成导出文件的档案表",
		Columns:    EnvelopesColumns,
		PrimaryKey: []*schema.Column{EnvelopesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "envelope_envelope_id",
				Unique:  false,
				Columns: []*schema.Column{EnvelopesColumns[1]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "config_key", Type: field.TypeString, Unique: true, Size: 100, Comment: "配置键"},
		{Name: "value", Type: field.TypeString, Size: 2147483647, Comment: "配置值"},
		{Name: "comment", Type: field.TypeString, Nullable: true, Size: 255, Comment: "配置注释"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Comment:    "系统设置表",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}
	// TrackedEntitiesColumns holds the columns for the "tracked_entities" table.
	TrackedEntitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "kind", Type: field.TypeString, Comment: "实体种类判别字段"},
		{Name: "update_type", Type: field.TypeEnum, Comment: "变更类型：首版本为create，之后为update，末版本可为delete", Enums: []string{"create", "update", "delete"}},
		{Name: "sid", Type: field.TypeInt, Nullable: true, Comment: "系统分配的业务SID，按种类取用"},
		{Name: "type_code", Type: field.TypeString, Nullable: true, Comment: "业务键的类型段，按种类取用"},
		{Name: "code", Type: field.TypeString, Nullable: true, Comment: "业务键的编码段，按种类取用"},
		{Name: "validity_start", Type: field.TypeTime, Comment: "有效期起（含当天）", SchemaType: map[string]string{"mysql": "date", "postgres": "date", "sqlite3": "date"}},
		{Name: "validity_end", Type: field.TypeTime, Nullable: true, Comment: "有效期止（含当天），空为无限期", SchemaType: map[string]string{"mysql": "date", "postgres": "date", "sqlite3": "date"}},
		{Name: "payload", Type: field.TypeJSON, Nullable: true, Comment: "种类特有的业务字段"},
		{Name: "parent_group_id", Type: field.TypeUint, Nullable: true, Comment: "从属记录回指父实体版本组，顶层记录为空"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "transaction_id", Type: field.TypeUint, Comment: "引入该版本的事务ID"},
		{Name: "version_group_id", Type: field.TypeUint, Comment: "所属版本组ID"},
	}
	// TrackedEntitiesTable holds the schema information for the "tracked_entities" table.
	TrackedEntitiesTable = &schema.Table{
		Name:       "tracked_entities",
		Comment:    "版本行表，一行即一个不可变版本",
		Columns:    TrackedEntitiesColumns,
		PrimaryKey: []*schema.Column{TrackedEntitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tracked_entities_transactions_entities",
				Columns:    []*schema.Column{TrackedEntitiesColumns[11]},
				RefColumns: []*schema.Column{TransactionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "tracked_entities_version_groups_versions",
				Columns:    []*schema.Column{TrackedEntitiesColumns[12]},
				RefColumns: []*schema.Column{VersionGroupsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "trackedentity_kind_version_group_id",
				Unique:  false,
				Columns: []*schema.Column{TrackedEntitiesColumns[1], TrackedEntitiesColumns[12]},
			},
			{
				Name:    "trackedentity_kind_sid",
				Unique:  false,
				Columns: []*schema.Column{TrackedEntitiesColumns[1], TrackedEntitiesColumns[3]},
			},
			{
				Name:    "trackedentity_transaction_id",
				Unique:  false,
				Columns: []*schema.Column{TrackedEntitiesColumns[11]},
			},
			{
				Name:    "trackedentity_parent_group_id",
				Unique:  false,
				Columns: []*schema.Column{TrackedEntitiesColumns[9]},
			},
		},
	}
	// TransactionsColumns holds the columns for the "transactions" table.
	TransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "partition", Type: field.TypeInt, Comment: "分区：1=seed_file 2=revision 3=draft，分区值编码时间先后"},
		{Name: "order", Type: field.TypeInt, Comment: "分区内的序号，由排序分配器串行分配"},
		{Name: "composite_key", Type: field.TypeString, Unique: true, Comment: "复合键 workbasketID-order，导入去重用"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "workbasket_id", Type: field.TypeUint, Comment: "所属workbasket ID"},
	}
	// TransactionsTable holds the schema information for the "transactions" table.
	TransactionsTable = &schema.Table{
		Name:       "transactions",
		Comment:    "事务表，(partition, order) 构成严格全序",
		Columns:    TransactionsColumns,
		PrimaryKey: []*schema.Column{TransactionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "transactions_work_baskets_transactions",
				Columns:    []*schema.Column{TransactionsColumns[5]},
				RefColumns: []*schema.Column{WorkBasketsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "transaction_partition_order",
				Unique:  true,
				Columns: []*schema.Column{TransactionsColumns[1], TransactionsColumns[2]},
			},
			{
				Name:    "transaction_workbasket_id",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[5]},
			},
		},
	}
	// VersionGroupsColumns holds the columns for the "version_groups" table.
	VersionGroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "current_version_id", Type: field.TypeUint, Nullable: true, Comment: "当前权威版本的行ID，最新批准版本为删除时为空"},
	}
	// VersionGroupsTable holds the schema information for the "version_groups" table.
	VersionGroupsTable = &schema.Table{
		Name:       "version_groups",
		Comment:    "版本组表，一个逻辑实体跨版本的身份",
		Columns:    VersionGroupsColumns,
		PrimaryKey: []*schema.Column{VersionGroupsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "version_groups_tracked_entities_current_version",
				Columns:    []*schema.Column{VersionGroupsColumns[2]},
				RefColumns: []*schema.Column{TrackedEntitiesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// WorkBasketsColumns holds the columns for the "work_baskets" table.
	WorkBasketsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "title", Type: field.TypeString, Size: 255, Comment: "简短名称"},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "变更原因"},
		{Name: "status", Type: field.TypeEnum, Comment: "审批工作流状态", Enums: []string{"editing", "awaiting_approval", "approval_rejected", "ready_for_export", "sent", "published", "export_error", "archived"}, Default: "editing"},
		{Name: "author", Type: field.TypeString, Comment: "创建人"},
		{Name: "approver", Type: field.TypeString, Nullable: true, Comment: "审批人，批准前为空"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorkBasketsTable holds the schema information for the "work_baskets" table.
	WorkBasketsTable = &schema.Table{
		Name:       "work_baskets",
		Comment:    "workbasket表，聚合将同时生效的一组关税变更",
		Columns:    WorkBasketsColumns,
		PrimaryKey: []*schema.Column{WorkBasketsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workbasket_status",
				Unique:  false,
				Columns: []*schema.Column{WorkBasketsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EnvelopesTable,
		SettingsTable,
		TrackedEntitiesTable,
		TransactionsTable,
		VersionGroupsTable,
		WorkBasketsTable,
	}
)

func init() {
	TrackedEntitiesTable.ForeignKeys[0].RefTable = TransactionsTable
	TrackedEntitiesTable.ForeignKeys[1].RefTable = VersionGroupsTable
	TransactionsTable.ForeignKeys[0].RefTable = WorkBasketsTable
	VersionGroupsTable.ForeignKeys[0].RefTable = TrackedEntitiesTable
}
