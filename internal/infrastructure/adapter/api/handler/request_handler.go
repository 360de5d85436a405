package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/amirhossein-jamali/arena-wallet/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/arena-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// multipartMemory is how much of a multipart body is held in memory; file parts beyond it
// are spooled to temporary files by net/http
const multipartMemory = 1 << 20

// formOverhead is the allowance for the text fields of a multipart body on top of the proof
const formOverhead = 1 << 20

// RequestHandler handles top-up, withdrawal and prize-claim HTTP requests
type RequestHandler struct {
	requests     usecase.FinancialRequestUseCase
	logger       coreport.Logger
	maxBodyBytes int64
}

// NewRequestHandler creates a new request handler instance. maxProofBytes bounds the
// uploaded proof image.
func NewRequestHandler(
	requests usecase.FinancialRequestUseCase,
	logger coreport.Logger,
	maxProofBytes int64,
) *RequestHandler {
	return &RequestHandler{
		requests:     requests,
		logger:       logger,
		maxBodyBytes: maxProofBytes + formOverhead,
	}
}

// SubmitTopUp handles POST /api/topup
func (h *RequestHandler) SubmitTopUp(c *gin.Context) {
	var form dto.TopUpForm
	h.submitMultipart(c, &form, "slipImage", func() entity.Submission { return form.Submission() })
}

// SubmitPrizeClaim handles POST /api/prizes
func (h *RequestHandler) SubmitPrizeClaim(c *gin.Context) {
	var form dto.PrizeClaimForm
	h.submitMultipart(c, &form, "proofImage", func() entity.Submission { return form.Submission() })
}

// SubmitWithdrawal handles POST /api/withdraw
func (h *RequestHandler) SubmitWithdrawal(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req dto.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	created, err := h.requests.Submit(c.Request.Context(), principal, req.Submission(), nil)
	if err != nil {
		respondError(c, h.logger, "Withdrawal submission failed", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewFinancialRequestResponse(created))
}

func (h *RequestHandler) submitMultipart(c *gin.Context, form any, fileField string, submission func() entity.Submission) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	if err := c.Request.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, h.logger, "Upload too large", domainerr.ErrProofTooLarge)
			return
		}
		respondError(c, h.logger, "Invalid multipart body", fmt.Errorf("%w: %s", domainerr.ErrInvalidRequest, err.Error()))
		return
	}
	if err := c.ShouldBindWith(form, binding.FormMultipart); err != nil {
		invalidBody(c, err)
		return
	}

	proof, closeProof, err := openProof(c, fileField)
	if err != nil {
		respondError(c, h.logger, "Failed to read proof image", err)
		return
	}
	defer closeProof()

	sub := submission()
	created, err := h.requests.Submit(c.Request.Context(), principal, sub, proof)
	if err != nil {
		respondError(c, h.logger, "Request submission failed", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewFinancialRequestResponse(created))
}

// openProof returns the uploaded file part, or nil when the client sent none
func openProof(c *gin.Context, field string) (*persistence.ProofUpload, func(), error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, func() {}, fmt.Errorf("%w: %s", domainerr.ErrInvalidRequest, err.Error())
	}

	file, err := header.Open()
	if err != nil {
		return nil, func() {}, err
	}
	return &persistence.ProofUpload{
		Filename: header.Filename,
		Size:     header.Size,
		Content:  file,
	}, closer(file), nil
}

func closer(f multipart.File) func() {
	return func() { _ = f.Close() }
}

// ListOwn handles the caller's own listing of one request kind
func (h *RequestHandler) ListOwn(kind entity.RequestKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := requirePrincipal(c)
		if !ok {
			return
		}
		query, err := listQuery(c)
		if err != nil {
			respondError(c, h.logger, "Invalid list query", err)
			return
		}

		page, err := h.requests.ListOwn(c.Request.Context(), principal, kind, query)
		if err != nil {
			respondError(c, h.logger, "Failed to list requests", err)
			return
		}
		c.JSON(http.StatusOK, dto.NewRequestListResponse(kind, page))
	}
}

// ListAdmin handles the admin review queue of one request kind
func (h *RequestHandler) ListAdmin(kind entity.RequestKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := requirePrincipal(c)
		if !ok {
			return
		}
		query, err := listQuery(c)
		if err != nil {
			respondError(c, h.logger, "Invalid list query", err)
			return
		}

		page, err := h.requests.ListAdmin(c.Request.Context(), principal, kind, query)
		if err != nil {
			respondError(c, h.logger, "Failed to list review queue", err)
			return
		}
		c.JSON(http.StatusOK, dto.NewRequestListResponse(kind, page))
	}
}

func listQuery(c *gin.Context) (usecase.ListQuery, error) {
	page, limit, err := pagination(c)
	if err != nil {
		return usecase.ListQuery{}, err
	}
	return usecase.ListQuery{
		Page:   page,
		Limit:  limit,
		Status: c.Query("status"),
		Search: strings.TrimSpace(c.Query("search")),
	}, nil
}

// Approve handles PUT /api/topup/:id/approve
func (h *RequestHandler) Approve(kind entity.RequestKind) gin.HandlerFunc {
	return h.review(kind, func(dto.ReviewRequest) (usecase.ProcessAction, error) {
		return usecase.ActionApprove, nil
	})
}

// Reject handles PUT /api/topup/:id/reject
func (h *RequestHandler) Reject(kind entity.RequestKind) gin.HandlerFunc {
	return h.review(kind, func(dto.ReviewRequest) (usecase.ProcessAction, error) {
		return usecase.ActionReject, nil
	})
}

// Process handles the process endpoints, where the body's status picks the decision
func (h *RequestHandler) Process(kind entity.RequestKind) gin.HandlerFunc {
	return h.review(kind, dto.ReviewRequest.ActionFromStatus)
}

func (h *RequestHandler) review(
	kind entity.RequestKind,
	decide func(dto.ReviewRequest) (usecase.ProcessAction, error),
) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := requirePrincipal(c)
		if !ok {
			return
		}

		var req dto.ReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			invalidBody(c, err)
			return
		}

		action, err := decide(req)
		if err != nil {
			respondError(c, h.logger, "Invalid review decision", err)
			return
		}
		cmd, err := processCommand(c, req, action)
		if err != nil {
			respondError(c, h.logger, "Invalid review request", err)
			return
		}

		processed, err := h.requests.Process(c.Request.Context(), principal, kind, c.Param("id"), cmd)
		if err != nil {
			respondError(c, h.logger, "Failed to process request", err)
			return
		}
		c.Header("ETag", strconv.Quote(strconv.FormatInt(processed.Version, 10)))
		c.JSON(http.StatusOK, dto.NewFinancialRequestResponse(processed))
	}
}

func processCommand(c *gin.Context, req dto.ReviewRequest, action usecase.ProcessAction) (usecase.ProcessCommand, error) {
	cmd := usecase.ProcessCommand{Action: action, Notes: req.Notes}

	version, err := expectedVersion(c.GetHeader("If-Match"), req.Version)
	if err != nil {
		return cmd, err
	}
	cmd.ExpectedVersion = version

	if action == usecase.ActionApprove {
		overrides, err := req.Overrides()
		if err != nil {
			return cmd, err
		}
		cmd.Overrides = overrides
	}
	return cmd, nil
}

// expectedVersion reads the optimistic-concurrency token from If-Match, falling back to
// the body. Zero disables the check.
func expectedVersion(ifMatch string, bodyVersion *int64) (int64, error) {
	ifMatch = strings.TrimSpace(ifMatch)
	if ifMatch == "" || ifMatch == "*" {
		if bodyVersion != nil && *bodyVersion > 0 {
			return *bodyVersion, nil
		}
		return 0, nil
	}

	tag := strings.Trim(strings.TrimPrefix(ifMatch, "W/"), `"`)
	version, err := strconv.ParseInt(tag, 10, 64)
	if err != nil || version < 1 {
		verr := domainerr.NewValidationError("review")
		verr.Add("If-Match", "must be a request version")
		return 0, verr
	}
	return version, nil
}

// Distribute handles POST /api/prizes/distribute
func (h *RequestHandler) Distribute(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req dto.DistributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	created, err := h.requests.Distribute(c.Request.Context(), principal, req.Command())
	if err != nil {
		respondError(c, h.logger, "Prize distribution failed", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewFinancialRequestResponse(created))
}

// Get handles GET /api/requests/:id
func (h *RequestHandler) Get(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	req, err := h.requests.Get(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "Failed to load request", err)
		return
	}
	c.Header("ETag", strconv.Quote(strconv.FormatInt(req.Version, 10)))
	c.JSON(http.StatusOK, dto.NewFinancialRequestResponse(req))
}

// Proof serves an uploaded proof image to its requester or an admin
func (h *RequestHandler) Proof(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	file, err := h.requests.OpenProof(c.Request.Context(), principal, c.Request.URL.Path)
	if err != nil {
		respondError(c, h.logger, "Failed to open proof image", err)
		return
	}
	defer file.Content.Close()

	c.Header("Cache-Control", "private, max-age=300")
	c.Header("X-Content-Type-Options", "nosniff")
	http.ServeContent(c.Writer, c.Request, file.Name, file.ModTime, file.Content)
}
