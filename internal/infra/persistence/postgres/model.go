package postgres

import (
	"time"

	"pixorva/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProfileModel mirrors the 'profiles' table. UID is the identity provider's user id.
type ProfileModel struct {
	UID                string `gorm:"type:varchar(128);primaryKey"`
	Email              string `gorm:"type:varchar(255);not null"`
	FullName           string `gorm:"type:varchar(100)"`
	AccountType        string `gorm:"type:varchar(16);not null"`
	IsSeller           bool   `gorm:"not null"`
	IsVerified         bool   `gorm:"not null;default:false"`
	BusinessName       string `gorm:"type:varchar(255)"`
	BusinessAddress    string `gorm:"type:text"`
	VerificationStatus string `gorm:"type:varchar(16)"`
	GSTProofURL        string `gorm:"type:text"`
	BusinessProofURL   string `gorm:"type:text"`
	SubmittedAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// ProductModel mirrors the 'products' table. PostgreSQL generates ids via gen_random_uuid().
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SellerID    string          `gorm:"type:varchar(128);not null;index"`
	SellerEmail string          `gorm:"type:varchar(255);not null"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text;not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null;check:price >= 0"`
	ImageURL    string          `gorm:"type:text;not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

func fromProfileDomain(p *entity.Profile) *ProfileModel {
	m := &ProfileModel{
		UID:                p.UID,
		Email:              p.Email,
		FullName:           p.FullName,
		AccountType:        string(p.AccountType),
		IsSeller:           p.IsSeller,
		IsVerified:         p.IsVerified,
		BusinessName:       p.BusinessName,
		BusinessAddress:    p.BusinessAddress,
		VerificationStatus: string(p.VerificationStatus),
		SubmittedAt:        p.SubmittedAt,
		CreatedAt:          p.CreatedAt,
	}
	if p.Documents != nil {
		m.GSTProofURL = p.Documents.GSTProofURL
		m.BusinessProofURL = p.Documents.BusinessProofURL
	}

	return m
}

func toProfileDomain(m *ProfileModel) *entity.Profile {
	p := &entity.Profile{
		UID:                m.UID,
		Email:              m.Email,
		FullName:           m.FullName,
		AccountType:        entity.AccountType(m.AccountType),
		IsSeller:           m.IsSeller,
		IsVerified:         m.IsVerified,
		BusinessName:       m.BusinessName,
		BusinessAddress:    m.BusinessAddress,
		VerificationStatus: entity.VerificationStatus(m.VerificationStatus),
		SubmittedAt:        m.SubmittedAt,
		CreatedAt:          m.CreatedAt,
	}
	if m.GSTProofURL != "" || m.BusinessProofURL != "" {
		p.Documents = &entity.VerificationDocuments{
			GSTProofURL:      m.GSTProofURL,
			BusinessProofURL: m.BusinessProofURL,
		}
	}

	return p
}

func fromProductDomain(p *entity.Product) *ProductModel {
	return &ProductModel{
		SellerID:    p.SellerID,
		SellerEmail: p.SellerEmail,
		Name:        p.Name,
		Description: p.Description,
		Price:       decimal.NewFromFloat(p.Price),
		ImageURL:    p.ImageURL,
	}
}
