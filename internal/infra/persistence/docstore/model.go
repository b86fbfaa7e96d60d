package docstore

import (
	"time"

	"pixorva/internal/domain/entity"
)

// profileDoc mirrors a document in the users collection.
type profileDoc struct {
	UID                string        `firestore:"uid"`
	Email              string        `firestore:"email"`
	FullName           string        `firestore:"fullName"`
	AccountType        string        `firestore:"accountType"`
	IsSeller           bool          `firestore:"isSeller"`
	IsVerified         bool          `firestore:"isVerified"`
	BusinessName       string        `firestore:"businessName,omitempty"`
	BusinessAddress    string        `firestore:"businessAddress,omitempty"`
	VerificationStatus string        `firestore:"verificationStatus,omitempty"`
	Documents          *documentsDoc `firestore:"documents,omitempty"`
	SubmittedAt        *time.Time    `firestore:"submittedAt,omitempty"`
	CreatedAt          time.Time     `firestore:"createdAt"`
}

type documentsDoc struct {
	GSTProofURL      string `firestore:"gstProofUrl"`
	BusinessProofURL string `firestore:"businessProofUrl"`
}

// productDoc mirrors a document in the products collection.
type productDoc struct {
	SellerID    string    `firestore:"sellerId"`
	SellerEmail string    `firestore:"sellerEmail"`
	Name        string    `firestore:"name"`
	Description string    `firestore:"description"`
	Price       float64   `firestore:"price"`
	ImageURL    string    `firestore:"imageUrl"`
	CreatedAt   time.Time `firestore:"createdAt,serverTimestamp"`
}

func fromProfileDomain(p *entity.Profile) *profileDoc {
	doc := &profileDoc{
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
		doc.Documents = &documentsDoc{
			GSTProofURL:      p.Documents.GSTProofURL,
			BusinessProofURL: p.Documents.BusinessProofURL,
		}
	}

	return doc
}

func (d *profileDoc) toDomain() *entity.Profile {
	profile := &entity.Profile{
		UID:                d.UID,
		Email:              d.Email,
		FullName:           d.FullName,
		AccountType:        entity.AccountType(d.AccountType),
		IsSeller:           d.IsSeller,
		IsVerified:         d.IsVerified,
		BusinessName:       d.BusinessName,
		BusinessAddress:    d.BusinessAddress,
		VerificationStatus: entity.VerificationStatus(d.VerificationStatus),
		SubmittedAt:        d.SubmittedAt,
		CreatedAt:          d.CreatedAt,
	}
	if d.Documents != nil {
		profile.Documents = &entity.VerificationDocuments{
			GSTProofURL:      d.Documents.GSTProofURL,
			BusinessProofURL: d.Documents.BusinessProofURL,
		}
	}

	return profile
}

func fromProductDomain(p *entity.Product) *productDoc {
	return &productDoc{
		SellerID:    p.SellerID,
		SellerEmail: p.SellerEmail,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
	}
}
