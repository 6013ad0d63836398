package api

import (
	"errors"
	"strings"
	"time"

	"github.com/Veraticus/the-credit-must-flow/internal/common"
	"github.com/Veraticus/the-credit-must-flow/internal/engine"
	"github.com/Veraticus/the-credit-must-flow/internal/model"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// AddTransactionRequest is the body of POST /api/transactions. OccurredAt
// defaults to the server clock.
type AddTransactionRequest struct {
	OccurredAt  *time.Time      `json:"occurred_at,omitempty"`
	Description string          `json:"description"`
	Method      string          `json:"method"`
	Amount      decimal.Decimal `json:"amount"`
}

// AddTransactionResponse returns the stored transaction and the snapshot it
// produced.
type AddTransactionResponse struct {
	Transaction model.Transaction `json:"transaction"`
	Snapshot    engine.Snapshot   `json:"snapshot"`
}

// UpdateConsentRequest is the body of PUT /api/consent/:key.
type UpdateConsentRequest struct {
	Value *bool `json:"value"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	State   string `json:"state"`
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:  "ok",
		Version: s.version,
		State:   s.engine.State().String(),
	})
}

func (s *Server) handleSnapshot(c *fiber.Ctx) error {
	return c.JSON(s.engine.Snapshot())
}

func (s *Server) handleScore(c *fiber.Ctx) error {
	return c.JSON(s.engine.CurrentScore())
}

func (s *Server) handleOffers(c *fiber.Ctx) error {
	return c.JSON(s.engine.CurrentOffers())
}

func (s *Server) handleInsights(c *fiber.Ctx) error {
	return c.JSON(s.engine.CurrentInsights())
}

func (s *Server) handleListTransactions(c *fiber.Ctx) error {
	return c.JSON(s.engine.Transactions())
}

func (s *Server) handleAddTransaction(c *fiber.Ctx) error {
	var req AddTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return BadRequestError(c, "invalid_body", "request body must be a JSON transaction")
	}

	in := model.NewTransaction{
		Amount:      req.Amount,
		Method:      model.ParseMethod(req.Method),
		Description: strings.TrimSpace(req.Description),
	}
	if req.OccurredAt != nil {
		in.OccurredAt = *req.OccurredAt
	}

	txn, snap, err := s.engine.Record(in)
	if err != nil {
		if common.IsValidationError(err) {
			return BadRequestError(c, "invalid_transaction", err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(AddTransactionResponse{
		Transaction: txn,
		Snapshot:    snap,
	})
}

func (s *Server) handleGetConsent(c *fiber.Ctx) error {
	return c.JSON(s.engine.Consent())
}

func (s *Server) handleUpdateConsent(c *fiber.Ctx) error {
	var req UpdateConsentRequest
	if err := c.BodyParser(&req); err != nil || req.Value == nil {
		return BadRequestError(c, "invalid_body", `request body must be {"value": true|false}`)
	}

	updated, err := s.engine.UpdateConsent(model.ConsentKey(c.Params("key")), *req.Value)
	if errors.Is(err, common.ErrUnknownConsent) {
		return NotFoundError(c, "unknown_consent", err.Error())
	}
	if err != nil {
		return err
	}

	return c.JSON(updated)
}
