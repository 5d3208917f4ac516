package inquiry

import (
	"errors"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"realnest/internal/models"
	"realnest/internal/testutils"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

type fakeResolver struct {
	snapshot     *models.PropertySnapshot
	err          error
	resolvedType models.PropertyType
	resolvedID   uint
}

func (f *fakeResolver) Resolve(propertyType models.PropertyType, id uint) (*models.PropertySnapshot, error) {
	f.resolvedType = propertyType
	f.resolvedID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshot, nil
}

func ownerSnapshot() *models.PropertySnapshot {
	return &models.PropertySnapshot{
		Title:     "2BHK in Baner",
		Price:     7500000,
		Image:     "https://images.example.com/flat1.jpg",
		Location:  "Baner",
		City:      "Pune",
		OwnerID:   20,
		OwnerName: "Seller One",
	}
}

func validCreateInput() CreateInput {
	return CreateInput{
		PropertyID:   1,
		PropertyType: models.PropertyTypeFlat,
		BuyerID:      7,
		BuyerName:    "Buyer One",
		BuyerEmail:   "buyer@example.com",
		BuyerPhone:   "9876543210",
		Message:      "Interested in this flat",
	}
}

func newTestService(t *testing.T) (*Service, *fakeResolver, sqlmock.Sqlmock, func()) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	resolver := &fakeResolver{snapshot: ownerSnapshot()}
	return NewService(NewStore(db), resolver), resolver, mock, cleanup
}

func expectNoActiveInquiry(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`SELECT count\(\*\) FROM "inquiries" WHERE property_id = (.+)`).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(0))
}

func TestCreate_Success(t *testing.T) {
	svc, resolver, mock, cleanup := newTestService(t)
	defer cleanup()

	expectNoActiveInquiry(mock)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "inquiries" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	inq, err := svc.Create(validCreateInput())

	assert.NoError(t, err)
	assert.Equal(t, models.InquiryPending, inq.Status)
	assert.Equal(t, uint(20), inq.SellerID)
	assert.Equal(t, "Seller One", inq.SellerName)
	assert.Equal(t, "2BHK in Baner", inq.PropertyTitle)
	assert.Equal(t, "Baner, Pune", inq.PropertyLocation)
	assert.Equal(t, models.InterestBuying, inq.InterestedIn, "interestedIn should default to buying")
	assert.Equal(t, models.PropertyTypeFlat, resolver.resolvedType)
	assert.Equal(t, uint(1), resolver.resolvedID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_LowercasesPropertyType(t *testing.T) {
	svc, resolver, mock, cleanup := newTestService(t)
	defer cleanup()

	expectNoActiveInquiry(mock)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "inquiries" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	input := validCreateInput()
	input.PropertyType = "FLAT"

	inq, err := svc.Create(input)

	assert.NoError(t, err)
	assert.Equal(t, models.PropertyTypeFlat, inq.PropertyType)
	assert.Equal(t, models.PropertyTypeFlat, resolver.resolvedType)
}

func TestCreate_MissingFields(t *testing.T) {
	svc, _, _, cleanup := newTestService(t)
	defer cleanup()

	mutations := map[string]func(*CreateInput){
		"propertyId":   func(in *CreateInput) { in.PropertyID = 0 },
		"propertyType": func(in *CreateInput) { in.PropertyType = "" },
		"buyerId":      func(in *CreateInput) { in.BuyerID = 0 },
		"buyerName":    func(in *CreateInput) { in.BuyerName = "" },
		"buyerEmail":   func(in *CreateInput) { in.BuyerEmail = "" },
		"buyerPhone":   func(in *CreateInput) { in.BuyerPhone = "" },
		"message":      func(in *CreateInput) { in.Message = "" },
	}

	for field, mutate := range mutations {
		input := validCreateInput()
		mutate(&input)

		_, err := svc.Create(input)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr, "field %s", field)
		assert.Equal(t, CodeMissingField, validationErr.Code, "field %s", field)
	}
}

func TestCreate_InvalidEmail(t *testing.T) {
	svc, _, _, cleanup := newTestService(t)
	defer cleanup()

	for _, email := range []string{"a@b", "a.com", "no spaces@b.com"} {
		input := validCreateInput()
		input.BuyerEmail = email

		_, err := svc.Create(input)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr, "email %q", email)
		assert.Equal(t, CodeInvalidEmail, validationErr.Code, "email %q", email)
	}
}

func TestCreate_ValidEmailFormats(t *testing.T) {
	svc, _, mock, cleanup := newTestService(t)
	defer cleanup()

	expectNoActiveInquiry(mock)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "inquiries" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	input := validCreateInput()
	input.BuyerEmail = "a@b.com"

	_, err := svc.Create(input)
	assert.NoError(t, err)
}

func TestCreate_InvalidPhone(t *testing.T) {
	svc, _, _, cleanup := newTestService(t)
	defer cleanup()

	for _, phone := range []string{"987654321", "98765432101", "98765abcde", "+919876543210"} {
		input := validCreateInput()
		input.BuyerPhone = phone

		_, err := svc.Create(input)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr, "phone %q", phone)
		assert.Equal(t, CodeInvalidPhone, validationErr.Code, "phone %q", phone)
	}
}

func TestCreate_InvalidPropertyType(t *testing.T) {
	svc, _, _, cleanup := newTestService(t)
	defer cleanup()

	input := validCreateInput()
	input.PropertyType = "villa"

	_, err := svc.Create(input)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, CodeInvalidPropertyType, validationErr.Code)
}

func TestCreate_PropertyNotFound(t *testing.T) {
	svc, resolver, _, cleanup := newTestService(t)
	defer cleanup()

	resolver.snapshot = nil
	resolver.err = &NotFoundError{Resource: "Property"}

	_, err := svc.Create(validCreateInput())

	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestCreate_SelfInquiry(t *testing.T) {
	svc, resolver, _, cleanup := newTestService(t)
	defer cleanup()

	resolver.snapshot.OwnerID = 7 // same as buyer

	_, err := svc.Create(validCreateInput())

	var conflictErr *ConflictError
	assert.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, CodeSelfInquiry, conflictErr.Code)
}

func TestCreate_DuplicateInquiry(t *testing.T) {
	svc, _, mock, cleanup := newTestService(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "inquiries" WHERE property_id = (.+)`).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(1))

	_, err := svc.Create(validCreateInput())

	var conflictErr *ConflictError
	assert.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, CodeDuplicateInquiry, conflictErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_SucceedsAfterTerminalStatus(t *testing.T) {
	svc, _, mock, cleanup := newTestService(t)
	defer cleanup()

	// The buyer's earlier inquiry for this property ended rejected. The
	// duplicate probe binds only pending and accepted, so the rejected row
	// never reaches the count and the new inquiry goes through.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "inquiries" WHERE property_id = \$1 AND buyer_id = \$2 AND status IN \(\$3,\$4\)`).
		WithArgs(1, 7, "pending", "accepted").
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "inquiries" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectCommit()

	inq, err := svc.Create(validCreateInput())

	assert.NoError(t, err)
	assert.Equal(t, models.InquiryPending, inq.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_StoreUnavailable(t *testing.T) {
	svc, _, mock, cleanup := newTestService(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "inquiries" WHERE property_id = (.+)`).
		WillReturnError(gorm.ErrInvalidDB)

	_, err := svc.Create(validCreateInput())

	var infraErr *InfrastructureError
	assert.ErrorAs(t, err, &infraErr)
	assert.True(t, errors.Is(err, gorm.ErrInvalidDB))
}

func inquiryColumns() []string {
	return []string{
		"id", "property_id", "property_type", "property_title", "property_price",
		"property_image", "property_location", "buyer_id", "buyer_name",
		"buyer_email", "buyer_phone", "seller_id", "seller_name", "message",
		"interested_in", "status", "seller_response", "responded_at",
		"created_at", "updated_at",
	}
}

func expectInquiryRow(mock sqlmock.Sqlmock, id, buyerID, sellerID uint, status models.InquiryStatus) {
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "inquiries" WHERE (.+)`).
		WillReturnRows(mock.NewRows(inquiryColumns()).
			AddRow(id, 1, "flat", "2BHK in Baner", 7500000.0,
				"", "Baner, Pune", buyerID, "Buyer One",
				"buyer@example.com", "9876543210", sellerID, "Seller One", "Interested",
				"buying", string(status), "", nil,
				now, now))
}

func expectInquirySave(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "inquiries" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
}

func TestCancel_Success(t *testing.T) {
	svc, _, mock, cleanup := newTestService(t)
	defer cleanup()

	expectInquiryRow(mock, 1, 7, 20, models.InquiryPending)
	expectInquirySave(mock)

	inq, err := svc.Cancel(1, 7)

	assert.NoError(t, err)
	assert.Equal(t, models.InquiryCancelled, inq.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancel_NotFound(t *testing.T) {
	svc, _, mock, cleanup := newTestService(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "inquiries" WHERE (.+)`).
		WillReturnRows(mock.NewRows(inquiryColumns()))

	_, err := svc.Cancel(99, 7)

	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestCancel_WrongBuyer(t *testing.T) {
	svc, _, mock, cleanup := newTestService(t)
	defer cleanup()

	expectInquiryRow(mock, 1, 7, 20, models.InquiryPending)

	_, err := svc.Cancel(1, 8)

	var authErr *AuthorizationError
	assert.ErrorAs(t, err, &authErr)
	assert.NoError(t, mock.ExpectationsWereMet(), "no write should happen")
}

func TestCancel_NotPending(t *testing.T) {
	svc, _, mock, cleanup := newTestService(t)
	defer cleanup()

	for _, status := range []models.InquiryStatus{
		models.InquiryAccepted,
		models.InquiryRejected,
		models.InquiryCompleted,
		models.InquiryCancelled,
	} {
		expectInquiryRow(mock, 1, 7, 20, status)

		_, err := svc.Cancel(1, 7)

		var stateErr *StateError
		assert.ErrorAs(t, err, &stateErr, "status %s", status)
		assert.Contains(t, stateErr.Message, string(status))
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_Success(t *testing.T) {
	svc, _, mock, cleanup := newTestService(t)
	defer cleanup()

	expectInquiryRow(mock, 1, 7, 20, models.InquiryPending)
	expectInquirySave(mock)

	inq, err := svc.UpdateStatus(1, 20, models.InquiryAccepted, "Let's talk")

	assert.NoError(t, err)
	assert.Equal(t, models.InquiryAccepted, inq.Status)
	assert.Equal(t, "Let's talk", inq.SellerResponse)
	assert.NotNil(t, inq.RespondedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_WithoutResponse(t *testing.T) {
	svc, _, mock, cleanup := newTestService(t)
	defer cleanup()

	expectInquiryRow(mock, 1, 7, 20, models.InquiryPending)
	expectInquirySave(mock)

	inq, err := svc.UpdateStatus(1, 20, models.InquiryRejected, "")

	assert.NoError(t, err)
	assert.Equal(t, models.InquiryRejected, inq.Status)
	assert.Empty(t, inq.SellerResponse)
	assert.Nil(t, inq.RespondedAt)
}

func TestUpdateStatus_WrongSeller(t *testing.T) {
	svc, _, mock, cleanup := newTestService(t)
	defer cleanup()

	expectInquiryRow(mock, 1, 7, 20, models.InquiryPending)

	_, err := svc.UpdateStatus(1, 21, models.InquiryAccepted, "")

	var authErr *AuthorizationError
	assert.ErrorAs(t, err, &authErr)
	assert.NoError(t, mock.ExpectationsWereMet(), "record must stay untouched")
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc, _, mock, cleanup := newTestService(t)
	defer cleanup()

	for _, status := range []models.InquiryStatus{"cancelled", "archived", ""} {
		expectInquiryRow(mock, 1, 7, 20, models.InquiryPending)

		_, err := svc.UpdateStatus(1, 20, status, "")

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr, "status %q", status)
		assert.Equal(t, CodeInvalidStatus, validationErr.Code, "status %q", status)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_ReenteringPendingAllowed(t *testing.T) {
	svc, _, mock, cleanup := newTestService(t)
	defer cleanup()

	expectInquiryRow(mock, 1, 7, 20, models.InquiryAccepted)
	expectInquirySave(mock)

	inq, err := svc.UpdateStatus(1, 20, models.InquiryPending, "")

	assert.NoError(t, err)
	assert.Equal(t, models.InquiryPending, inq.Status)
}

func TestDelete_MarksRejected(t *testing.T) {
	svc, _, mock, cleanup := newTestService(t)
	defer cleanup()

	expectInquiryRow(mock, 1, 7, 20, models.InquiryPending)
	expectInquirySave(mock)

	inq, err := svc.Delete(1, 20)

	assert.NoError(t, err)
	assert.Equal(t, models.InquiryRejected, inq.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_WrongSeller(t *testing.T) {
	svc, _, mock, cleanup := newTestService(t)
	defer cleanup()

	expectInquiryRow(mock, 1, 7, 20, models.InquiryPending)

	_, err := svc.Delete(1, 21)

	var authErr *AuthorizationError
	assert.ErrorAs(t, err, &authErr)
}

func TestGetSellerStats(t *testing.T) {
	svc, _, mock, cleanup := newTestService(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT status, count\(\*\) as count FROM "inquiries" WHERE seller_id = (.+)`).
		WillReturnRows(mock.NewRows([]string{"status", "count"}).
			AddRow("pending", 2).
			AddRow("accepted", 1).
			AddRow("rejected", 3))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "inquiries" WHERE seller_id = (.+)`).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(6))

	stats, err := svc.GetSellerStats(20)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), stats.Pending)
	assert.Equal(t, int64(1), stats.Accepted)
	assert.Equal(t, int64(3), stats.Rejected)
	assert.Equal(t, int64(0), stats.Cancelled, "absent statuses are zero-filled")
	assert.Equal(t, int64(0), stats.Completed)
	assert.Equal(t, int64(6), stats.Total)

	sum := stats.Pending + stats.Accepted + stats.Rejected + stats.Cancelled + stats.Completed
	assert.Equal(t, stats.Total, sum, "total must equal the sum of per-status counts")
}

func TestGetSellerStats_NoInquiries(t *testing.T) {
	svc, _, mock, cleanup := newTestService(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT status, count\(\*\) as count FROM "inquiries" WHERE seller_id = (.+)`).
		WillReturnRows(mock.NewRows([]string{"status", "count"}))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "inquiries" WHERE seller_id = (.+)`).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(0))

	stats, err := svc.GetSellerStats(42)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), stats.Total)
	assert.Equal(t, int64(0), stats.Pending)
	assert.Equal(t, int64(0), stats.Cancelled)
}
