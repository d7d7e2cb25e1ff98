// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivationTokensColumns holds the columns for the "activation_tokens" table.
	ActivationTokensColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "token_hash", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "used_at", Type: field.TypeTime, Nullable: true},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// ActivationTokensTable holds the schema information for the "activation_tokens" table.
	ActivationTokensTable = &schema.Table{
		Name:       "activation_tokens",
		Columns:    ActivationTokensColumns,
		PrimaryKey: []*schema.Column{ActivationTokensColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "activation_tokens_patients_activation_tokens",
				Columns:    []*schema.Column{ActivationTokensColumns[5]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "activationtoken_patient_id",
				Unique:  false,
				Columns: []*schema.Column{ActivationTokensColumns[5]},
			},
			{
				Name:    "activationtoken_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ActivationTokensColumns[3]},
			},
		},
	}
	// BilansColumns holds the columns for the "bilans" table.
	BilansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"generated", "in_review", "validated", "finalized"}, Default: "generated"},
		{Name: "version", Type: field.TypeInt},
		{Name: "detailed_scores", Type: field.TypeJSON},
		{Name: "dg_score", Type: field.TypeInt},
		{Name: "global_risk", Type: field.TypeEnum, Enums: []string{"low", "moderate", "high", "very_high"}},
		{Name: "developmental_age_months", Type: field.TypeInt},
		{Name: "graphic_profile", Type: field.TypeJSON, Nullable: true},
		{Name: "strengths", Type: field.TypeJSON, Nullable: true},
		{Name: "watch_points", Type: field.TypeJSON, Nullable: true},
		{Name: "interpretation", Type: field.TypeString, Size: 2147483647},
		{Name: "practitioner_comments", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "recommendations", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "generated_at", Type: field.TypeTime},
		{Name: "validated_at", Type: field.TypeTime, Nullable: true},
		{Name: "pdf_key", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "prescription_id", Type: field.TypeUUID},
	}
	// BilansTable holds the schema information for the "bilans" table.
	BilansTable = &schema.Table{
		Name:       "bilans",
		Columns:    BilansColumns,
		PrimaryKey: []*schema.Column{BilansColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bilans_prescriptions_bilans",
				Columns:    []*schema.Column{BilansColumns[18]},
				RefColumns: []*schema.Column{PrescriptionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "bilan_prescription_id_version",
				Unique:  true,
				Columns: []*schema.Column{BilansColumns[18], BilansColumns[4]},
			},
			{
				Name:    "bilan_status",
				Unique:  false,
				Columns: []*schema.Column{BilansColumns[3]},
			},
		},
	}
	// PassationsColumns holds the columns for the "passations" table.
	PassationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"started", "in_progress", "suspended", "finished", "abandoned"}, Default: "started"},
		{Name: "answers", Type: field.TypeJSON, Nullable: true},
		{Name: "scores", Type: field.TypeJSON, Nullable: true},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "current_part", Type: field.TypeString, Nullable: true, Size: 2},
		{Name: "chronological_age_months", Type: field.TypeInt},
		{Name: "birth_date", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_minutes", Type: field.TypeInt, Nullable: true},
		{Name: "last_activity_at", Type: field.TypeTime},
		{Name: "ip_address", Type: field.TypeString, Nullable: true, Size: 45},
		{Name: "user_agent", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "prescription_id", Type: field.TypeUUID},
	}
	// PassationsTable holds the schema information for the "passations" table.
	PassationsTable = &schema.Table{
		Name:       "passations",
		Columns:    PassationsColumns,
		PrimaryKey: []*schema.Column{PassationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "passations_prescriptions_passations",
				Columns:    []*schema.Column{PassationsColumns[16]},
				RefColumns: []*schema.Column{PrescriptionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "passation_prescription_id",
				Unique:  true,
				Columns: []*schema.Column{PassationsColumns[16]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status IN ('started', 'in_progress', 'suspended')",
				},
			},
			{
				Name:    "passation_status",
				Unique:  false,
				Columns: []*schema.Column{PassationsColumns[3]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "birth_date", Type: field.TypeTime},
		{Name: "guardian_email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "guardian_phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "social_security_encrypted", Type: field.TypeString, Nullable: true},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "activated", Type: field.TypeBool, Default: false},
		{Name: "activated_at", Type: field.TypeTime, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "practitioner_id", Type: field.TypeUUID},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patients_users_patients",
				Columns:    []*schema.Column{PatientsColumns[14]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patient_practitioner_id",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[14]},
			},
		},
	}
	// PrescriptionsColumns holds the columns for the "prescriptions" table.
	PrescriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "validated", "cancelled"}, Default: "pending"},
		{Name: "gdpr_consent", Type: field.TypeBool, Default: false},
		{Name: "priority", Type: field.TypeInt, Default: 2},
		{Name: "deadline", Type: field.TypeTime, Nullable: true},
		{Name: "instructions", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "test_id", Type: field.TypeUUID},
		{Name: "practitioner_id", Type: field.TypeUUID},
	}
	// PrescriptionsTable holds the schema information for the "prescriptions" table.
	PrescriptionsTable = &schema.Table{
		Name:       "prescriptions",
		Columns:    PrescriptionsColumns,
		PrimaryKey: []*schema.Column{PrescriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "prescriptions_patients_prescriptions",
				Columns:    []*schema.Column{PrescriptionsColumns[8]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "prescriptions_tests_prescriptions",
				Columns:    []*schema.Column{PrescriptionsColumns[9]},
				RefColumns: []*schema.Column{TestsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "prescriptions_users_prescriptions",
				Columns:    []*schema.Column{PrescriptionsColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "prescription_practitioner_id",
				Unique:  false,
				Columns: []*schema.Column{PrescriptionsColumns[10]},
			},
			{
				Name:    "prescription_patient_id",
				Unique:  false,
				Columns: []*schema.Column{PrescriptionsColumns[8]},
			},
			{
				Name:    "prescription_status",
				Unique:  false,
				Columns: []*schema.Column{PrescriptionsColumns[3]},
			},
		},
	}
	// TestsColumns holds the columns for the "tests" table.
	TestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"IDE"}, Default: "IDE"},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "age_min_months", Type: field.TypeInt, Default: 15},
		{Name: "age_max_months", Type: field.TypeInt, Default: 72},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// TestsTable holds the schema information for the "tests" table.
	TestsTable = &schema.Table{
		Name:       "tests",
		Columns:    TestsColumns,
		PrimaryKey: []*schema.Column{TestsColumns[0]},
	}
	// TestItemsColumns holds the columns for the "test_items" table.
	TestItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "part", Type: field.TypeString, Size: 2},
		{Name: "domain", Type: field.TypeString, Size: 4},
		{Name: "item_order", Type: field.TypeInt},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "counts_dg", Type: field.TypeBool, Default: false},
		{Name: "age_min_months", Type: field.TypeInt, Nullable: true},
		{Name: "age_max_months", Type: field.TypeInt, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "test_id", Type: field.TypeUUID},
	}
	// TestItemsTable holds the schema information for the "test_items" table.
	TestItemsTable = &schema.Table{
		Name:       "test_items",
		Columns:    TestItemsColumns,
		PrimaryKey: []*schema.Column{TestItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "test_items_tests_items",
				Columns:    []*schema.Column{TestItemsColumns[11]},
				RefColumns: []*schema.Column{TestsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "testitem_test_id_part_domain_item_order",
				Unique:  true,
				Columns: []*schema.Column{TestItemsColumns[11], TestItemsColumns[3], TestItemsColumns[4], TestItemsColumns[5]},
			},
			{
				Name:    "testitem_test_id_part",
				Unique:  false,
				Columns: []*schema.Column{TestItemsColumns[11], TestItemsColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"practitioner", "admin"}, Default: "practitioner"},
		{Name: "rpps_number", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "SUSPENDED"}, Default: "ACTIVE"},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivationTokensTable,
		BilansTable,
		PassationsTable,
		PatientsTable,
		PrescriptionsTable,
		TestsTable,
		TestItemsTable,
		UsersTable,
	}
)

func init() {
	ActivationTokensTable.ForeignKeys[0].RefTable = PatientsTable
	BilansTable.ForeignKeys[0].RefTable = PrescriptionsTable
	PassationsTable.ForeignKeys[0].RefTable = PrescriptionsTable
	PatientsTable.ForeignKeys[0].RefTable = UsersTable
	PrescriptionsTable.ForeignKeys[0].RefTable = PatientsTable
	PrescriptionsTable.ForeignKeys[1].RefTable = TestsTable
	PrescriptionsTable.ForeignKeys[2].RefTable = UsersTable
	TestItemsTable.ForeignKeys[0].RefTable = TestsTable
}
