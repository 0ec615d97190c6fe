package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"traveling-message/internal/core/domain"
	"traveling-message/internal/core/ports"
	"traveling-message/internal/core/ports/mocks"
	"traveling-message/internal/metrics"
	"traveling-message/pkg/apperror"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAddress = "bc1qprojectaddress"

type submissionFixture struct {
	entryRepo *mocks.MockEntryRepository
	verifier  *mocks.MockPaymentVerifier
	geocoder  *mocks.MockGeocoder
	exporter  *mocks.MockLogExporter
	svc       *SubmissionService
}

func newSubmissionFixture(t *testing.T) *submissionFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &submissionFixture{
		entryRepo: mocks.NewMockEntryRepository(ctrl),
		verifier:  mocks.NewMockPaymentVerifier(ctrl),
		geocoder:  mocks.NewMockGeocoder(ctrl),
		exporter:  mocks.NewMockLogExporter(ctrl),
	}
	f.svc = NewSubmissionService(
		f.entryRepo, f.verifier, f.geocoder, f.exporter,
		domain.Project{BTCAddress: testAddress, OriginLabel: "Vancouver Island, BC, Canada"},
		metrics.New(prometheus.NewRegistry()),
		zerolog.Nop(),
	)
	return f
}

func validRequest() ports.SubmitRequest {
	return ports.SubmitRequest{
		TxID:    strings.Repeat("a", 64),
		Alias:   "wanderer",
		City:    "Nanaimo",
		Country: "Canada",
	}
}

func TestSubmit_Success(t *testing.T) {
	f := newSubmissionFixture(t)
	req := validRequest()

	f.verifier.EXPECT().AmountPaid(gomock.Any(), req.TxID, testAddress).Return(0.0015, nil)
	f.geocoder.EXPECT().Resolve(gomock.Any(), "Nanaimo", "Canada").
		Return(domain.Coordinates{Lat: 49.1659, Lng: -123.9401}, nil)
	f.entryRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *domain.Entry) error {
			e.ID = 1
			return nil
		})
	f.exporter.EXPECT().Export(gomock.Any()).Return(nil)

	entry, err := f.svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, req.TxID, entry.TxID)
	assert.Equal(t, "wanderer", entry.Alias)
	assert.InDelta(t, 0.0015, entry.AmountBTC, 1e-12)
	assert.InDelta(t, 49.1659, entry.Lat, 1e-9)
	assert.InDelta(t, -123.9401, entry.Lng, 1e-9)
	assert.NotEmpty(t, entry.ISODate)
}

func TestSubmit_SanitizesFields(t *testing.T) {
	f := newSubmissionFixture(t)
	req := ports.SubmitRequest{
		TxID:    "  " + strings.Repeat("a", 64) + "  ",
		Alias:   "  a   wanderer  ",
		City:    " Nanaimo\t",
		Country: "Canada\n",
	}

	f.verifier.EXPECT().AmountPaid(gomock.Any(), strings.Repeat("a", 64), testAddress).Return(0.001, nil)
	f.geocoder.EXPECT().Resolve(gomock.Any(), "Nanaimo", "Canada").
		Return(domain.Coordinates{Lat: 49.1659, Lng: -123.9401}, nil)
	f.entryRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	f.exporter.EXPECT().Export(gomock.Any()).Return(nil)

	entry, err := f.svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "a wanderer", entry.Alias)
	assert.Equal(t, "Nanaimo", entry.City)
	assert.Equal(t, "Canada", entry.Country)
}

func TestSubmit_InvalidTxID(t *testing.T) {
	f := newSubmissionFixture(t)
	req := validRequest()
	req.TxID = "not-a-txid"

	_, err := f.svc.Submit(context.Background(), req)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SUB_001", appErr.Code)
}

func TestSubmit_MissingLocation(t *testing.T) {
	f := newSubmissionFixture(t)
	req := validRequest()
	req.City = "   "

	_, err := f.svc.Submit(context.Background(), req)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SUB_002", appErr.Code)
}

func TestSubmit_PaymentUnverified(t *testing.T) {
	f := newSubmissionFixture(t)
	req := validRequest()

	f.verifier.EXPECT().AmountPaid(gomock.Any(), req.TxID, testAddress).
		Return(0.0, errors.New("transaction pays nothing to address"))

	_, err := f.svc.Submit(context.Background(), req)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VER_001", appErr.Code)
}

func TestSubmit_LocationUnresolved(t *testing.T) {
	f := newSubmissionFixture(t)
	req := validRequest()

	f.verifier.EXPECT().AmountPaid(gomock.Any(), req.TxID, testAddress).Return(0.0015, nil)
	f.geocoder.EXPECT().Resolve(gomock.Any(), "Nanaimo", "Canada").
		Return(domain.Coordinates{}, errors.New("no match"))

	_, err := f.svc.Submit(context.Background(), req)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VER_002", appErr.Code)
}

func TestSubmit_DuplicateTxID(t *testing.T) {
	f := newSubmissionFixture(t)
	req := validRequest()

	f.verifier.EXPECT().AmountPaid(gomock.Any(), req.TxID, testAddress).Return(0.0015, nil)
	f.geocoder.EXPECT().Resolve(gomock.Any(), "Nanaimo", "Canada").
		Return(domain.Coordinates{Lat: 49.1659, Lng: -123.9401}, nil)
	f.entryRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(ports.ErrDuplicateEntry)

	_, err := f.svc.Submit(context.Background(), req)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LOG_001", appErr.Code)
}

func TestSubmit_ExportFailureDoesNotFailSubmission(t *testing.T) {
	f := newSubmissionFixture(t)
	req := validRequest()

	f.verifier.EXPECT().AmountPaid(gomock.Any(), req.TxID, testAddress).Return(0.0015, nil)
	f.geocoder.EXPECT().Resolve(gomock.Any(), "Nanaimo", "Canada").
		Return(domain.Coordinates{Lat: 49.1659, Lng: -123.9401}, nil)
	f.entryRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	f.exporter.EXPECT().Export(gomock.Any()).Return(errors.New("disk full"))

	entry, err := f.svc.Submit(context.Background(), req)
	assert.NoError(t, err)
	assert.NotNil(t, entry)
}

func TestSubmit_InsertFailure(t *testing.T) {
	f := newSubmissionFixture(t)
	req := validRequest()

	f.verifier.EXPECT().AmountPaid(gomock.Any(), req.TxID, testAddress).Return(0.0015, nil)
	f.geocoder.EXPECT().Resolve(gomock.Any(), "Nanaimo", "Canada").
		Return(domain.Coordinates{Lat: 49.1659, Lng: -123.9401}, nil)
	f.entryRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	_, err := f.svc.Submit(context.Background(), req)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYS_001", appErr.Code)
}
