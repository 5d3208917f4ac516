package inquiry

import (
	"errors"

	"gorm.io/gorm"

	"realnest/internal/models"
)

// activeStatuses are the statuses that count toward duplicate suppression.
var activeStatuses = []models.InquiryStatus{
	models.InquiryPending,
	models.InquiryAccepted,
}

// Store persists inquiry records. It holds the injected connection handle
// and translates driver failures into the package error taxonomy.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Create(inq *models.Inquiry) error {
	if err := s.db.Create(inq).Error; err != nil {
		return &InfrastructureError{Op: "create inquiry", Err: err}
	}
	return nil
}

func (s *Store) GetByID(id uint) (*models.Inquiry, error) {
	var inq models.Inquiry
	if err := s.db.First(&inq, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Inquiry"}
		}
		return nil, &InfrastructureError{Op: "get inquiry", Err: err}
	}
	return &inq, nil
}

func (s *Store) Save(inq *models.Inquiry) error {
	if err := s.db.Save(inq).Error; err != nil {
		return &InfrastructureError{Op: "save inquiry", Err: err}
	}
	return nil
}

func (s *Store) ListByBuyer(buyerID uint) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := s.db.
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&inquiries).Error
	if err != nil {
		return nil, &InfrastructureError{Op: "list buyer inquiries", Err: err}
	}
	return inquiries, nil
}

func (s *Store) ListBySeller(sellerID uint) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := s.db.
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&inquiries).Error
	if err != nil {
		return nil, &InfrastructureError{Op: "list seller inquiries", Err: err}
	}
	return inquiries, nil
}

// HasActiveInquiry reports whether the buyer already has a pending or
// accepted inquiry for the property. The check is a plain read; it is not
// atomic with a subsequent insert.
func (s *Store) HasActiveInquiry(propertyID, buyerID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Inquiry{}).
		Where("property_id = ? AND buyer_id = ? AND status IN ?", propertyID, buyerID, activeStatuses).
		Count(&count).Error
	if err != nil {
		return false, &InfrastructureError{Op: "check existing inquiry", Err: err}
	}
	return count > 0, nil
}

func (s *Store) CountBySeller(sellerID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Inquiry{}).
		Where("seller_id = ?", sellerID).
		Count(&count).Error
	if err != nil {
		return 0, &InfrastructureError{Op: "count seller inquiries", Err: err}
	}
	return count, nil
}

// StatusCounts groups the seller's inquiries by status. Absent statuses are
// simply missing from the map; callers zero-fill.
func (s *Store) StatusCounts(sellerID uint) (map[models.InquiryStatus]int64, error) {
	type statusCount struct {
		Status models.InquiryStatus
		Count  int64
	}

	var rows []statusCount
	err := s.db.Model(&models.Inquiry{}).
		Select("status, count(*) as count").
		Where("seller_id = ?", sellerID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, &InfrastructureError{Op: "count inquiries by status", Err: err}
	}

	counts := make(map[models.InquiryStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
