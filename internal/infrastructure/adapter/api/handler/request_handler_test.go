package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/logger"
	musecase "github.com/amirhossein-jamali/arena-wallet/mocks/port/usecase"
)

var (
	createdAt = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	player    = entity.Principal{UserID: "user-1", Name: "Nadia", Phone: "01700000001", Role: entity.RoleUser}
	admin     = entity.Principal{UserID: "admin-1", Name: "Ops", Role: entity.RoleAdmin}
	pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}
)

// newTestRouter returns a gin engine that authenticates every request as p
func newTestRouter(p *entity.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	if p != nil {
		principal := *p
		router.Use(func(c *gin.Context) {
			middleware.SetPrincipal(c, principal)
			c.Next()
		})
	}
	return router
}

func perform(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func pendingRequest(kind entity.RequestKind, id string, amount int64) *entity.FinancialRequest {
	return &entity.FinancialRequest{
		ID:            id,
		RequesterID:   player.UserID,
		RequesterName: player.Name,
		Kind:          kind,
		Amount:        amount,
		Status:        entity.StatusPending,
		PaymentMethod: entity.PaymentBkash,
		AccountNumber: "01711111111",
		Version:       1,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

func multipartBody(t *testing.T, fields map[string]string, fileField string, file []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, "proof.png")
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func newRequestHandler(t *testing.T, maxProofBytes int64) (*RequestHandler, *musecase.MockFinancialRequestUseCase) {
	requests := musecase.NewMockFinancialRequestUseCase(t)
	return NewRequestHandler(requests, logger.NewNoopLogger(), maxProofBytes), requests
}

func TestRequestHandler_SubmitWithdrawal(t *testing.T) {
	t.Run("Creates a pending withdrawal from a numeric amount", func(t *testing.T) {
		h, requests := newRequestHandler(t, 5<<20)
		router := newTestRouter(&player)
		router.POST("/api/withdraw", h.SubmitWithdrawal)

		requests.EXPECT().Submit(mock.Anything, player, entity.Submission{
			Kind:          entity.KindWithdrawal,
			Amount:        "500",
			PaymentMethod: "bkash",
			AccountNumber: "01711111111",
		}, (*persistence.ProofUpload)(nil)).Return(pendingRequest(entity.KindWithdrawal, "wdr_1", 50000), nil).Once()

		w := perform(router, jsonRequest(http.MethodPost, "/api/withdraw",
			`{"amount":500,"paymentMethod":"bkash","accountNumber":"01711111111"}`))

		require.Equal(t, http.StatusCreated, w.Code)
		var resp dto.FinancialRequestResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "wdr_1", resp.ID)
		assert.Equal(t, "500.00", resp.Amount)
		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, entity.StatusBadge{Label: "Pending", Category: entity.BadgeWarning}, resp.Badge)
	})

	t.Run("Returns field errors when validation fails", func(t *testing.T) {
		h, requests := newRequestHandler(t, 5<<20)
		router := newTestRouter(&player)
		router.POST("/api/withdraw", h.SubmitWithdrawal)

		verr := domainerr.NewValidationError("withdrawal")
		verr.Add("accountNumber", "is required")
		requests.EXPECT().Submit(mock.Anything, player, mock.Anything, mock.Anything).Return(nil, verr).Once()

		w := perform(router, jsonRequest(http.MethodPost, "/api/withdraw", `{"amount":"10.00","paymentMethod":"bkash"}`))

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, domainerr.CodeValidation, resp.Code)
		assert.Equal(t, []domainerr.FieldError{{Field: "accountNumber", Reason: "is required"}}, resp.Fields)
	})

	t.Run("Rejects malformed JSON before reaching the use case", func(t *testing.T) {
		h, _ := newRequestHandler(t, 5<<20)
		router := newTestRouter(&player)
		router.POST("/api/withdraw", h.SubmitWithdrawal)

		w := perform(router, jsonRequest(http.MethodPost, "/api/withdraw", `{"amount":`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Maps insufficient balance to 400", func(t *testing.T) {
		h, requests := newRequestHandler(t, 5<<20)
		router := newTestRouter(&player)
		router.POST("/api/withdraw", h.SubmitWithdrawal)

		requests.EXPECT().Submit(mock.Anything, player, mock.Anything, mock.Anything).
			Return(nil, domainerr.NewInsufficientBalanceError("user-1", "500.00", "10.00")).Once()

		w := perform(router, jsonRequest(http.MethodPost, "/api/withdraw",
			`{"amount":"500","paymentMethod":"bkash","accountNumber":"017"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeInsufficientBalance, decodeError(t, w).Code)
	})

	t.Run("Answers 401 without a principal", func(t *testing.T) {
		h, _ := newRequestHandler(t, 5<<20)
		router := newTestRouter(nil)
		router.POST("/api/withdraw", h.SubmitWithdrawal)

		w := perform(router, jsonRequest(http.MethodPost, "/api/withdraw", `{}`))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequestHandler_SubmitTopUp(t *testing.T) {
	fields := map[string]string{
		"amount":        "250.50",
		"paymentMethod": "nagad",
		"accountNumber": "01811111111",
		"transactionId": "TX-42",
	}

	t.Run("Passes the form and the uploaded slip to the use case", func(t *testing.T) {
		h, requests := newRequestHandler(t, 5<<20)
		router := newTestRouter(&player)
		router.POST("/api/topup", h.SubmitTopUp)

		requests.EXPECT().Submit(mock.Anything, player, entity.Submission{
			Kind:           entity.KindTopUp,
			Amount:         "250.50",
			PaymentMethod:  "nagad",
			AccountNumber:  "01811111111",
			TransactionRef: "TX-42",
		}, mock.MatchedBy(func(p *persistence.ProofUpload) bool {
			return p != nil && p.Filename == "proof.png" && p.Size == int64(len(pngHeader))
		})).Return(pendingRequest(entity.KindTopUp, "topup_1", 25050), nil).Once()

		body, contentType := multipartBody(t, fields, "slipImage", pngHeader)
		req := httptest.NewRequest(http.MethodPost, "/api/topup", body)
		req.Header.Set("Content-Type", contentType)

		w := perform(router, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"topup_1"`)
	})

	t.Run("Submits without a proof so the schema can reject it", func(t *testing.T) {
		h, requests := newRequestHandler(t, 5<<20)
		router := newTestRouter(&player)
		router.POST("/api/topup", h.SubmitTopUp)

		verr := domainerr.NewValidationError("top-up")
		verr.Add("slipImage", "is required")
		requests.EXPECT().Submit(mock.Anything, player, mock.Anything, (*persistence.ProofUpload)(nil)).Return(nil, verr).Once()

		body, contentType := multipartBody(t, fields, "", nil)
		req := httptest.NewRequest(http.MethodPost, "/api/topup", body)
		req.Header.Set("Content-Type", contentType)

		w := perform(router, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "slipImage", decodeError(t, w).Fields[0].Field)
	})

	t.Run("Rejects a body over the upload limit with 413", func(t *testing.T) {
		h, _ := newRequestHandler(t, 16)
		router := newTestRouter(&player)
		router.POST("/api/topup", h.SubmitTopUp)

		body, contentType := multipartBody(t, fields, "slipImage", bytes.Repeat([]byte{0xff}, 2<<20))
		req := httptest.NewRequest(http.MethodPost, "/api/topup", body)
		req.Header.Set("Content-Type", contentType)

		w := perform(router, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Equal(t, domainerr.CodeProofTooLarge, decodeError(t, w).Code)
	})

	t.Run("Rejects a non-multipart body", func(t *testing.T) {
		h, _ := newRequestHandler(t, 5<<20)
		router := newTestRouter(&player)
		router.POST("/api/topup", h.SubmitTopUp)

		w := perform(router, jsonRequest(http.MethodPost, "/api/topup", `{"amount":"10"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRequestHandler_SubmitPrizeClaim(t *testing.T) {
	h, requests := newRequestHandler(t, 5<<20)
	router := newTestRouter(&player)
	router.POST("/api/prizes", h.SubmitPrizeClaim)

	requests.EXPECT().Submit(mock.Anything, player, mock.MatchedBy(func(sub entity.Submission) bool {
		return sub.Kind == entity.KindPrizeClaim &&
			sub.TournamentID == "trn_1" &&
			sub.PlayerID == "PUBG-77" &&
			sub.Kills == "4" &&
			sub.Notes == "top fragger"
	}), mock.Anything).Return(pendingRequest(entity.KindPrizeClaim, "prize_1", 20000), nil).Once()

	body, contentType := multipartBody(t, map[string]string{
		"tournamentId":   "trn_1",
		"tournamentCode": "ARENA-1",
		"prizeType":      "kill_prize",
		"amount":         "200",
		"playerName":     "Ghost",
		"playerID":       "PUBG-77",
		"kills":          "4",
		"notes":          "top fragger",
	}, "proofImage", pngHeader)
	req := httptest.NewRequest(http.MethodPost, "/api/prizes", body)
	req.Header.Set("Content-Type", contentType)

	w := perform(router, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRequestHandler_Lists(t *testing.T) {
	t.Run("Admin queue uses the kind's list key and forwards the query", func(t *testing.T) {
		h, requests := newRequestHandler(t, 5<<20)
		router := newTestRouter(&admin)
		router.GET("/api/topup/admin", h.ListAdmin(entity.KindTopUp))

		page := &entity.Page[*entity.FinancialRequest]{
			Items: []*entity.FinancialRequest{pendingRequest(entity.KindTopUp, "topup_1", 1000)},
			Info:  entity.NewPageInfo(entity.NewPageQuery(2, 5), 11),
		}
		requests.EXPECT().ListAdmin(mock.Anything, admin, entity.KindTopUp, usecase.ListQuery{
			Page: 2, Limit: 5, Status: "all", Search: "nadia",
		}).Return(page, nil).Once()

		w := perform(router, httptest.NewRequest(http.MethodGet, "/api/topup/admin?page=2&limit=5&status=all&search=+nadia+", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.TopUpListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.TopUps, 1)
		assert.Equal(t, entity.PageInfo{Page: 2, Pages: 3, Total: 11, Limit: 5}, resp.Pagination)
	})

	t.Run("Own withdrawals are listed under withdrawals", func(t *testing.T) {
		h, requests := newRequestHandler(t, 5<<20)
		router := newTestRouter(&player)
		router.GET("/api/withdraw", h.ListOwn(entity.KindWithdrawal))

		requests.EXPECT().ListOwn(mock.Anything, player, entity.KindWithdrawal, usecase.ListQuery{}).
			Return(&entity.Page[*entity.FinancialRequest]{Info: entity.NewPageInfo(entity.NewPageQuery(0, 0), 0)}, nil).Once()

		w := perform(router, httptest.NewRequest(http.MethodGet, "/api/withdraw", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"withdrawals":[],"pagination":{"page":1,"pages":0,"total":0,"limit":10}}`, w.Body.String())
	})

	t.Run("Rejects a non-numeric page", func(t *testing.T) {
		h, _ := newRequestHandler(t, 5<<20)
		router := newTestRouter(&player)
		router.GET("/api/prizes", h.ListOwn(entity.KindPrizeClaim))

		w := perform(router, httptest.NewRequest(http.MethodGet, "/api/prizes?page=two", nil))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "page", decodeError(t, w).Fields[0].Field)
	})
}

func TestRequestHandler_Review(t *testing.T) {
	processed := func(kind entity.RequestKind, status entity.RequestStatus) *entity.FinancialRequest {
		r := pendingRequest(kind, "req_1", 50000)
		r.Status = status
		r.Version = 2
		return r
	}

	t.Run("Process maps completed to approve and reads If-Match", func(t *testing.T) {
		h, requests := newRequestHandler(t, 5<<20)
		router := newTestRouter(&admin)
		router.PUT("/api/withdraw/:id/process", h.Process(entity.KindWithdrawal))

		requests.EXPECT().Process(mock.Anything, admin, entity.KindWithdrawal, "wdr_1", usecase.ProcessCommand{
			Action:          usecase.ActionApprove,
			Notes:           "paid",
			ExpectedVersion: 1,
		}).Return(processed(entity.KindWithdrawal, entity.StatusCompleted), nil).Once()

		req := jsonRequest(http.MethodPut, "/api/withdraw/wdr_1/process", `{"status":"completed","notes":"paid"}`)
		req.Header.Set("If-Match", `"1"`)
		w := perform(router, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `"2"`, w.Header().Get("ETag"))
		assert.Contains(t, w.Body.String(), `"label":"Completed"`)
	})

	t.Run("Process rejects an unknown status without calling the use case", func(t *testing.T) {
		h, _ := newRequestHandler(t, 5<<20)
		router := newTestRouter(&admin)
		router.PUT("/api/prizes/:id/process", h.Process(entity.KindPrizeClaim))

		w := perform(router, jsonRequest(http.MethodPut, "/api/prizes/prize_1/process", `{"status":"maybe"}`))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "status", decodeError(t, w).Fields[0].Field)
	})

	t.Run("Approve parses overrides and the body version", func(t *testing.T) {
		h, requests := newRequestHandler(t, 5<<20)
		router := newTestRouter(&admin)
		router.PUT("/api/topup/:id/approve", h.Approve(entity.KindTopUp))

		amount := int64(15050)
		method := entity.PaymentNagad
		requests.EXPECT().Process(mock.Anything, admin, entity.KindTopUp, "topup_1", usecase.ProcessCommand{
			Action:          usecase.ActionApprove,
			ExpectedVersion: 3,
			Overrides:       entity.ApprovalOverrides{Amount: &amount, PaymentMethod: &method},
		}).Return(processed(entity.KindTopUp, entity.StatusApproved), nil).Once()

		w := perform(router, jsonRequest(http.MethodPut, "/api/topup/topup_1/approve",
			`{"amount":150.50,"paymentMethod":"NAGAD","accountNumber":"","version":3}`))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Approve rejects an invalid override", func(t *testing.T) {
		h, _ := newRequestHandler(t, 5<<20)
		router := newTestRouter(&admin)
		router.PUT("/api/topup/:id/approve", h.Approve(entity.KindTopUp))

		w := perform(router, jsonRequest(http.MethodPut, "/api/topup/topup_1/approve", `{"paymentMethod":"paypal"}`))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "paymentMethod", decodeError(t, w).Fields[0].Field)
	})

	t.Run("Reject accepts an empty body", func(t *testing.T) {
		h, requests := newRequestHandler(t, 5<<20)
		router := newTestRouter(&admin)
		router.PUT("/api/topup/:id/reject", h.Reject(entity.KindTopUp))

		verr := domainerr.NewValidationError("top-up")
		verr.Add("notes", "a rejection reason is required")
		requests.EXPECT().Process(mock.Anything, admin, entity.KindTopUp, "topup_1", usecase.ProcessCommand{
			Action: usecase.ActionReject,
		}).Return(nil, verr).Once()

		w := perform(router, httptest.NewRequest(http.MethodPut, "/api/topup/topup_1/reject", nil))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "notes", decodeError(t, w).Fields[0].Field)
	})

	t.Run("A second transition is a conflict", func(t *testing.T) {
		h, requests := newRequestHandler(t, 5<<20)
		router := newTestRouter(&admin)
		router.PUT("/api/topup/:id/reject", h.Reject(entity.KindTopUp))

		requests.EXPECT().Process(mock.Anything, admin, entity.KindTopUp, "topup_1", mock.Anything).
			Return(nil, domainerr.NewTransitionError("topup_1", "top-up", "approved", "rejected", domainerr.ErrAlreadyProcessed)).Once()

		w := perform(router, jsonRequest(http.MethodPut, "/api/topup/topup_1/reject", `{"notes":"duplicate"}`))

		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, domainerr.CodeAlreadyProcessed, decodeError(t, w).Code)
	})

	t.Run("A stale version is a conflict", func(t *testing.T) {
		h, requests := newRequestHandler(t, 5<<20)
		router := newTestRouter(&admin)
		router.PUT("/api/prizes/:id/process", h.Process(entity.KindPrizeClaim))

		requests.EXPECT().Process(mock.Anything, admin, entity.KindPrizeClaim, "prize_1", mock.Anything).
			Return(nil, domainerr.NewVersionConflictError("prize_1", 1, 2)).Once()

		w := perform(router, jsonRequest(http.MethodPut, "/api/prizes/prize_1/process", `{"status":"approved","version":1}`))

		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, domainerr.CodeVersionConflict, decodeError(t, w).Code)
	})

	t.Run("Rejects a malformed If-Match", func(t *testing.T) {
		h, _ := newRequestHandler(t, 5<<20)
		router := newTestRouter(&admin)
		router.PUT("/api/topup/:id/approve", h.Approve(entity.KindTopUp))

		req := jsonRequest(http.MethodPut, "/api/topup/topup_1/approve", `{}`)
		req.Header.Set("If-Match", `W/"abc"`)
		w := perform(router, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRequestHandler_Distribute(t *testing.T) {
	h, requests := newRequestHandler(t, 5<<20)
	router := newTestRouter(&admin)
	router.POST("/api/prizes/distribute", h.Distribute)

	kills := 3
	requests.EXPECT().Distribute(mock.Anything, admin, usecase.DistributeCommand{
		TournamentID: "trn_1",
		UserID:       "user-1",
		PrizeType:    "kill_prize",
		Amount:       "300",
		Kills:        &kills,
		Notes:        "3 kills",
	}).Return(&entity.FinancialRequest{
		ID:          "prize_9",
		RequesterID: "user-1",
		Kind:        entity.KindPrizeClaim,
		Amount:      30000,
		Status:      entity.StatusApproved,
		ProcessedBy: admin.UserID,
		Version:     1,
	}, nil).Once()

	w := perform(router, jsonRequest(http.MethodPost, "/api/prizes/distribute",
		`{"tournamentId":"trn_1","userId":"user-1","prizeType":"kill_prize","amount":300,"kills":3,"notes":"3 kills"}`))

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"approved"`)
}

func TestRequestHandler_Get(t *testing.T) {
	h, requests := newRequestHandler(t, 5<<20)
	router := newTestRouter(&player)
	router.GET("/api/requests/:id", h.Get)

	requests.EXPECT().Get(mock.Anything, player, "topup_404").Return(nil, domainerr.ErrRequestNotFound).Once()
	requests.EXPECT().Get(mock.Anything, player, "topup_1").Return(pendingRequest(entity.KindTopUp, "topup_1", 100), nil).Once()

	w := perform(router, httptest.NewRequest(http.MethodGet, "/api/requests/topup_404", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, domainerr.CodeRequestNotFound, decodeError(t, w).Code)

	w = perform(router, httptest.NewRequest(http.MethodGet, "/api/requests/topup_1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `"1"`, w.Header().Get("ETag"))
}

func TestExpectedVersion(t *testing.T) {
	five := int64(5)
	tests := []struct {
		name    string
		ifMatch string
		body    *int64
		want    int64
		wantErr bool
	}{
		{name: "No version", want: 0},
		{name: "Body version", body: &five, want: 5},
		{name: "Strong tag wins over body", ifMatch: `"7"`, body: &five, want: 7},
		{name: "Weak tag", ifMatch: `W/"8"`, want: 8},
		{name: "Wildcard", ifMatch: "*", want: 0},
		{name: "Zero is invalid", ifMatch: `"0"`, wantErr: true},
		{name: "Garbage", ifMatch: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expectedVersion(tt.ifMatch, tt.body)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerr.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
