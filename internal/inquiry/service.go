package inquiry

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"realnest/internal/models"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

// validUpdateStatuses are the statuses a seller may set. Updates may move an
// inquiry between any of these in any direction, including back to pending;
// only the buyer's cancel path reaches cancelled.
var validUpdateStatuses = []models.InquiryStatus{
	models.InquiryPending,
	models.InquiryAccepted,
	models.InquiryRejected,
	models.InquiryCompleted,
}

// PropertyResolver resolves a type-tagged property reference to a snapshot.
type PropertyResolver interface {
	Resolve(propertyType models.PropertyType, id uint) (*models.PropertySnapshot, error)
}

// Service executes the inquiry lifecycle: creation with cross-entity
// validation, buyer cancellation, seller status updates, soft deletion and
// per-seller statistics.
type Service struct {
	store      *Store
	properties PropertyResolver
	validate   *validator.Validate
}

func NewService(store *Store, properties PropertyResolver) *Service {
	return &Service{
		store:      store,
		properties: properties,
		validate:   validator.New(),
	}
}

type CreateInput struct {
	PropertyID   uint                `json:"propertyId" validate:"required"`
	PropertyType models.PropertyType `json:"propertyType" validate:"required"`
	BuyerID      uint                `json:"buyerId" validate:"required"`
	BuyerName    string              `json:"buyerName" validate:"required"`
	BuyerEmail   string              `json:"buyerEmail" validate:"required"`
	BuyerPhone   string              `json:"buyerPhone" validate:"required"`
	Message      string              `json:"message" validate:"required"`
	InterestedIn models.InterestType `json:"interestedIn"`
}

// Create validates the input, resolves the property, enforces the
// self-inquiry and duplicate rules and persists a pending inquiry carrying a
// snapshot of the listing and its owner.
func (s *Service) Create(input CreateInput) (*models.Inquiry, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, &ValidationError{Code: CodeMissingField, Message: "All fields are required"}
	}

	if !emailRegex.MatchString(input.BuyerEmail) {
		return nil, &ValidationError{Code: CodeInvalidEmail, Message: "Please provide a valid email address"}
	}

	if !phoneRegex.MatchString(input.BuyerPhone) {
		return nil, &ValidationError{Code: CodeInvalidPhone, Message: "Please provide a valid 10-digit phone number"}
	}

	propertyType := models.PropertyType(strings.ToLower(string(input.PropertyType)))
	if !propertyType.Valid() {
		return nil, &ValidationError{
			Code:    CodeInvalidPropertyType,
			Message: "Invalid property type. Must be flat, shop, or bunglow",
		}
	}

	snapshot, err := s.properties.Resolve(propertyType, input.PropertyID)
	if err != nil {
		return nil, err
	}

	if snapshot.OwnerID == input.BuyerID {
		return nil, &ConflictError{Code: CodeSelfInquiry, Message: "You cannot inquire about your own property"}
	}

	exists, err := s.store.HasActiveInquiry(input.PropertyID, input.BuyerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &ConflictError{Code: CodeDuplicateInquiry, Message: "You have already sent an inquiry for this property"}
	}

	interestedIn := input.InterestedIn
	if interestedIn == "" {
		interestedIn = models.InterestBuying
	}

	inq := &models.Inquiry{
		PropertyID:       input.PropertyID,
		PropertyType:     propertyType,
		PropertyTitle:    snapshot.Title,
		PropertyPrice:    snapshot.Price,
		PropertyImage:    snapshot.Image,
		PropertyLocation: fmt.Sprintf("%s, %s", snapshot.Location, snapshot.City),
		BuyerID:          input.BuyerID,
		BuyerName:        input.BuyerName,
		BuyerEmail:       input.BuyerEmail,
		BuyerPhone:       input.BuyerPhone,
		SellerID:         snapshot.OwnerID,
		SellerName:       snapshot.OwnerName,
		Message:          input.Message,
		InterestedIn:     interestedIn,
		Status:           models.InquiryPending,
	}

	if err := s.store.Create(inq); err != nil {
		return nil, err
	}
	return inq, nil
}

// Cancel moves a pending inquiry to cancelled. Only the owning buyer may
// cancel, and only while the inquiry is still pending; cancelled is terminal.
func (s *Service) Cancel(id, buyerID uint) (*models.Inquiry, error) {
	inq, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}

	if inq.BuyerID != buyerID {
		return nil, &AuthorizationError{Message: "You can only cancel your own inquiries"}
	}

	if inq.Status != models.InquiryPending {
		return nil, &StateError{Message: fmt.Sprintf("Cannot cancel inquiry with status: %s", inq.Status)}
	}

	inq.Status = models.InquiryCancelled
	if err := s.store.Save(inq); err != nil {
		return nil, err
	}
	return inq, nil
}

// UpdateStatus applies a seller decision. Any of the four seller-settable
// statuses may be set regardless of the current one; a response, when given,
// is stored together with its timestamp.
func (s *Service) UpdateStatus(id, sellerID uint, status models.InquiryStatus, sellerResponse string) (*models.Inquiry, error) {
	inq, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}

	if inq.SellerID != sellerID {
		return nil, &AuthorizationError{Message: "You can only update inquiries for your properties"}
	}

	if !isUpdatable(status) {
		return nil, &ValidationError{
			Code:    CodeInvalidStatus,
			Message: "Invalid status. Must be one of: pending, accepted, rejected, completed",
		}
	}

	inq.Status = status
	if sellerResponse != "" {
		now := time.Now()
		inq.SellerResponse = sellerResponse
		inq.RespondedAt = &now
	}

	if err := s.store.Save(inq); err != nil {
		return nil, err
	}
	return inq, nil
}

// Delete soft-deletes an inquiry on the seller's behalf by marking it
// rejected. The record stays in storage.
func (s *Service) Delete(id, sellerID uint) (*models.Inquiry, error) {
	inq, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}

	if inq.SellerID != sellerID {
		return nil, &AuthorizationError{Message: "You can only delete inquiries for your properties"}
	}

	inq.Status = models.InquiryRejected
	if err := s.store.Save(inq); err != nil {
		return nil, err
	}
	return inq, nil
}

func (s *Service) GetByID(id uint) (*models.Inquiry, error) {
	return s.store.GetByID(id)
}

func (s *Service) ListByBuyer(buyerID uint) ([]models.Inquiry, error) {
	return s.store.ListByBuyer(buyerID)
}

func (s *Service) ListBySeller(sellerID uint) ([]models.Inquiry, error) {
	return s.store.ListBySeller(sellerID)
}

// SellerStats holds per-status inquiry counts for a seller. Statuses with no
// inquiries are zero. Total always equals the sum of the five counts.
type SellerStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Accepted  int64 `json:"accepted"`
	Rejected  int64 `json:"rejected"`
	Cancelled int64 `json:"cancelled"`
	Completed int64 `json:"completed"`
}

func (s *Service) GetSellerStats(sellerID uint) (*SellerStats, error) {
	counts, err := s.store.StatusCounts(sellerID)
	if err != nil {
		return nil, err
	}

	total, err := s.store.CountBySeller(sellerID)
	if err != nil {
		return nil, err
	}

	return &SellerStats{
		Total:     total,
		Pending:   counts[models.InquiryPending],
		Accepted:  counts[models.InquiryAccepted],
		Rejected:  counts[models.InquiryRejected],
		Cancelled: counts[models.InquiryCancelled],
		Completed: counts[models.InquiryCompleted],
	}, nil
}

func isUpdatable(status models.InquiryStatus) bool {
	for _, valid := range validUpdateStatuses {
		if status == valid {
			return true
		}
	}
	return false
}
