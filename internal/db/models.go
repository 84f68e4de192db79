package db

import "time"

// Product maps catalog.products.
type Product struct {
	ProductID      string     `gorm:"column:product_id;type:text;primaryKey"`
	Name           string     `gorm:"column:name;type:text;not null"`
	Brand          string     `gorm:"column:brand;type:text;not null"`
	Category       string     `gorm:"column:category;type:text;not null"`
	CollectionName *string    `gorm:"column:collection_name;type:text"`
	StyleTags      *string    `gorm:"column:style_tags;type:text"`
	Color          *string    `gorm:"column:color;type:text"`
	Material       *string    `gorm:"column:material;type:text"`
	Price          int        `gorm:"column:price;type:integer;not null"`
	ImageURL       string     `gorm:"column:image_url;type:text;not null"`
	AffiliateURL   string     `gorm:"column:affiliate_url;type:text;not null"`
	WidthCm        *float64   `gorm:"column:width_cm;type:numeric"`
	HeightCm       *float64   `gorm:"column:height_cm;type:numeric"`
	DepthCm        *float64   `gorm:"column:depth_cm;type:numeric"`
	LengthCm       *float64   `gorm:"column:length_cm;type:numeric"`
	DiameterCm     *float64   `gorm:"column:diameter_cm;type:numeric"`
	Availability   string     `gorm:"column:availability;type:text;not null;default:unknown"`
	IsSeasonal     bool       `gorm:"column:is_seasonal;type:boolean;not null;default:false"`
	Season         *string    `gorm:"column:season;type:text"`
	SearchKeywords *string    `gorm:"column:search_keywords;type:text"`
	DeletedAt      *time.Time `gorm:"column:deleted_at;type:timestamptz"`
	CreatedAt      time.Time  `gorm:"column:created_at;type:timestamptz;not null;default:now()"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;type:timestamptz;not null;default:now()"`
}

func (Product) TableName() string { return "catalog.products" }

// ProductImage maps catalog.product_images.
type ProductImage struct {
	ProductImageID int64     `gorm:"column:product_image_id;primaryKey;autoIncrement"`
	ProductID      string    `gorm:"column:product_id;type:text;not null;uniqueIndex:ux_product_images_product_url"`
	URL            string    `gorm:"column:url;type:text;not null;uniqueIndex:ux_product_images_product_url"`
	Position       int       `gorm:"column:position;type:integer;not null;default:0"`
	CreatedAt      time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"`
}

func (ProductImage) TableName() string { return "catalog.product_images" }

// ImportRun maps catalog.import_runs.
type ImportRun struct {
	RunID            int64      `gorm:"column:run_id;primaryKey;autoIncrement"`
	Vendor           string     `gorm:"column:vendor;type:text;not null"`
	DryRun           bool       `gorm:"column:dry_run;type:boolean;not null;default:false"`
	StartedAt        time.Time  `gorm:"column:started_at;type:timestamptz;not null;default:now()"`
	FinishedAt       *time.Time `gorm:"column:finished_at;type:timestamptz"`
	Status           string     `gorm:"column:status;type:text;not null;default:running"`
	TotalRows        int        `gorm:"column:total_rows;type:integer;not null;default:0"`
	ImportedRows     int        `gorm:"column:imported_rows;type:integer;not null;default:0"`
	SkippedRows      int        `gorm:"column:skipped_rows;type:integer;not null;default:0"`
	ValidationErrors int        `gorm:"column:validation_errors;type:integer;not null;default:0"`
	DuplicateRows    int        `gorm:"column:duplicate_rows;type:integer;not null;default:0"`
	WarningCount     int        `gorm:"column:warning_count;type:integer;not null;default:0"`
	ErrorMessage     *string    `gorm:"column:error_message;type:text"`
	CreatedAt        time.Time  `gorm:"column:created_at;type:timestamptz;not null;default:now()"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;type:timestamptz;not null;default:now()"`
}

func (ImportRun) TableName() string { return "catalog.import_runs" }

func autoMigrateModels() []any {
	return []any{
		&Product{},
		&ProductImage{},
		&ImportRun{},
	}
}
