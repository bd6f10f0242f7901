package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/errs"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/handler"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/model"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/pkg/auth"
	"github.com/JoshikaMadhu/Student-Resource-Distribution-System/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/JoshikaMadhu/Student-Resource-Distribution-System/circulation/internal/handler/mocks"
)

const testStudentID = 7

func TestHandler_SubmitRequest(t *testing.T) {
	t.Parallel()
	type input struct {
		body string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCirculationService, req input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockCirculationService, req input) {
				r.EXPECT().
					SubmitRequest(context.Background(), testStudentID, 3).
					Return(model.SubmitRequestResponse{
						Request: model.LoanRequest{
							RequestID:    1,
							StudentID:    testStudentID,
							ResourceID:   3,
							ResourceName: "Scientific Calculator",
							Status:       model.RequestApproved,
						},
						Transaction: model.Transaction{
							TransactionID: 5,
							StudentID:     testStudentID,
							ResourceID:    3,
							ResourceName:  "Scientific Calculator",
							RequestID:     1,
							Status:        model.TransactionIssued,
						},
					}, nil)
			},
			input: input{body: `{"resourceId":3}`},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"request":{"requestId":1,"studentId":7,"resourceId":3,"resourceName":"Scientific Calculator","status":"Approved","requestDate":"0001-01-01T00:00:00Z"},"transaction":{"transactionId":5,"studentId":7,"resourceId":3,"resourceName":"Scientific Calculator","requestId":1,"issueDate":"0001-01-01T00:00:00Z","dueDate":"0001-01-01T00:00:00Z","status":"Issued"}}`,
			},
			wantErr: false,
		},
		{
			name: "err. resource unavailable",
			mockBehavior: func(r *service_mocks.MockCirculationService, req input) {
				r.EXPECT().
					SubmitRequest(context.Background(), testStudentID, 3).
					Return(model.SubmitRequestResponse{}, errs.ErrResourceUnavailable)
			},
			input: input{body: `{"resourceId":3}`},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"resource not available"}`,
			},
			wantErr: true,
		},
		{
			name: "err. resource not found",
			mockBehavior: func(r *service_mocks.MockCirculationService, req input) {
				r.EXPECT().
					SubmitRequest(context.Background(), testStudentID, 404).
					Return(model.SubmitRequestResponse{}, errs.ErrResourceNotFound)
			},
			input: input{body: `{"resourceId":404}`},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"resource not found"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. resourceId required",
			mockBehavior: func(r *service_mocks.MockCirculationService, req input) {},
			input:        input{body: `{}`},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
			wantErr: true,
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockCirculationService, req input) {
				r.EXPECT().
					SubmitRequest(context.Background(), testStudentID, 3).
					Return(model.SubmitRequestResponse{}, errors.New("db internal"))
			},
			input: input{body: `{"resourceId":3}`},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCirculationService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/v1/requests", h.SubmitRequest, auth.MiddlewareStudentID)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/requests", strings.NewReader(tt.input.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r.Header.Set(auth.XStudentIDHeader, fmt.Sprintf("%d", testStudentID))
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_ReturnTransaction(t *testing.T) {
	t.Parallel()
	type input struct {
		transactionID string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCirculationService, req input)

	returnDate := time.Time{}

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
		wantErr      bool
	}{
		{
			name: "ok. late return with fine",
			mockBehavior: func(r *service_mocks.MockCirculationService, req input) {
				r.EXPECT().
					ReturnItem(context.Background(), 9, testStudentID).
					Return(model.ReturnResponse{
						Transaction: model.Transaction{
							TransactionID: 9,
							StudentID:     testStudentID,
							ResourceID:    3,
							ResourceName:  "Lab Coat",
							RequestID:     4,
							ReturnDate:    &returnDate,
							Status:        model.TransactionReturned,
						},
						Fine: &model.Fine{
							FineID:        2,
							StudentID:     testStudentID,
							ResourceID:    3,
							TransactionID: 9,
							Amount:        20,
							Reason:        "Late return",
							Status:        model.FinePending,
						},
					}, nil)
			},
			input: input{transactionID: "9"},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"transaction":{"transactionId":9,"studentId":7,"resourceId":3,"resourceName":"Lab Coat","requestId":4,"issueDate":"0001-01-01T00:00:00Z","dueDate":"0001-01-01T00:00:00Z","returnDate":"0001-01-01T00:00:00Z","status":"Returned"},"fine":{"fineId":2,"studentId":7,"resourceId":3,"transactionId":9,"amount":20,"reason":"Late return","status":"Pending","createdAt":"0001-01-01T00:00:00Z"}}`,
			},
			wantErr: false,
		},
		{
			name: "err. already returned",
			mockBehavior: func(r *service_mocks.MockCirculationService, req input) {
				r.EXPECT().
					ReturnItem(context.Background(), 9, testStudentID).
					Return(model.ReturnResponse{}, errs.ErrAlreadyReturned)
			},
			input: input{transactionID: "9"},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"transaction already returned"}`,
			},
			wantErr: true,
		},
		{
			name: "err. not owner",
			mockBehavior: func(r *service_mocks.MockCirculationService, req input) {
				r.EXPECT().
					ReturnItem(context.Background(), 9, testStudentID).
					Return(model.ReturnResponse{}, errs.ErrUnauthorized)
			},
			input: input{transactionID: "9"},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"not record owner"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. invalid transactionId",
			mockBehavior: func(r *service_mocks.MockCirculationService, req input) {},
			input:        input{transactionID: "abc"},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"transactionId is invalid"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCirculationService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/v1/transactions/:transactionId/return", h.ReturnTransaction, auth.MiddlewareStudentID)

			r := httptest.NewRequest(
				http.MethodPost, fmt.Sprintf("/api/v1/transactions/%s/return", tt.input.transactionID), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r.Header.Set(auth.XStudentIDHeader, fmt.Sprintf("%d", testStudentID))
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_PayFine(t *testing.T) {
	t.Parallel()
	type input struct {
		fineID string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCirculationService, req input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockCirculationService, req input) {
				r.EXPECT().
					PayFine(context.Background(), 2, testStudentID).
					Return(model.Fine{
						FineID:        2,
						StudentID:     testStudentID,
						ResourceID:    3,
						TransactionID: 9,
						Amount:        20,
						Reason:        "Late return",
						Status:        model.FinePaid,
					}, nil)
			},
			input: input{fineID: "2"},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"fineId":2,"studentId":7,"resourceId":3,"transactionId":9,"amount":20,"reason":"Late return","status":"Paid","createdAt":"0001-01-01T00:00:00Z"}`,
			},
			wantErr: false,
		},
		{
			name: "err. already paid",
			mockBehavior: func(r *service_mocks.MockCirculationService, req input) {
				r.EXPECT().
					PayFine(context.Background(), 2, testStudentID).
					Return(model.Fine{}, errs.ErrAlreadyPaid)
			},
			input: input{fineID: "2"},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"fine already paid"}`,
			},
			wantErr: true,
		},
		{
			name: "err. not found",
			mockBehavior: func(r *service_mocks.MockCirculationService, req input) {
				r.EXPECT().
					PayFine(context.Background(), 44, testStudentID).
					Return(model.Fine{}, errs.ErrNotFound)
			},
			input: input{fineID: "44"},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCirculationService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/v1/fines/:fineId/pay", h.PayFine, auth.MiddlewareStudentID)

			r := httptest.NewRequest(
				http.MethodPost, fmt.Sprintf("/api/v1/fines/%s/pay", tt.input.fineID), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r.Header.Set(auth.XStudentIDHeader, fmt.Sprintf("%d", testStudentID))
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetFines(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCirculationService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		header       bool
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					ListFines(context.Background(), testStudentID).
					Return(model.FinesInfo{
						PendingTotal: 20,
						Items: []model.Fine{
							{
								FineID:        2,
								StudentID:     testStudentID,
								ResourceID:    3,
								TransactionID: 9,
								Amount:        20,
								Reason:        "Late return",
								Status:        model.FinePending,
							},
						},
					}, nil)
			},
			header: true,
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"pendingTotal":20,"items":[{"fineId":2,"studentId":7,"resourceId":3,"transactionId":9,"amount":20,"reason":"Late return","status":"Pending","createdAt":"0001-01-01T00:00:00Z"}]}`,
			},
		},
		{
			name:         "err. no student header",
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			header:       false,
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"student id is required"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCirculationService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/api/v1/fines", h.GetFines, auth.MiddlewareStudentID)

			r := httptest.NewRequest(http.MethodGet, "/api/v1/fines", http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.header {
				r.Header.Set(auth.XStudentIDHeader, fmt.Sprintf("%d", testStudentID))
			}
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetResources(t *testing.T) {
	t.Parallel()
	type input struct {
		query string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCirculationService, inp input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
	}{
		{
			name: "ok. filtered",
			mockBehavior: func(r *service_mocks.MockCirculationService, inp input) {
				r.EXPECT().
					ListResources(context.Background(), model.ResourceFilter{
						Search:        "calc",
						Category:      "Electronics",
						AvailableOnly: true,
					}).
					Return([]model.Resource{
						{
							ResourceID:        3,
							Name:              "Scientific Calculator",
							Category:          "Electronics",
							Description:       "Casio FX-991",
							TotalQuantity:     5,
							AvailableQuantity: 2,
						},
					}, nil)
			},
			input: input{query: "?search=calc&category=Electronics&availableOnly=true"},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"resourceId":3,"name":"Scientific Calculator","category":"Electronics","description":"Casio FX-991","totalQuantity":5,"availableQuantity":2}]`,
			},
		},
		{
			name:         "err. invalid availableOnly",
			mockBehavior: func(r *service_mocks.MockCirculationService, inp input) {},
			input:        input{query: "?availableOnly=nope"},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"availableOnly is invalid"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCirculationService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/api/v1/resources", h.GetResources, auth.MiddlewareStudentID)

			r := httptest.NewRequest(http.MethodGet, "/api/v1/resources"+tt.input.query, http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r.Header.Set(auth.XStudentIDHeader, fmt.Sprintf("%d", testStudentID))
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
