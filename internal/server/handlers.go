package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rustyeddy/lotsize/calculator"
	"github.com/rustyeddy/lotsize/journal"
	"github.com/rustyeddy/lotsize/risk"
	"github.com/rustyeddy/lotsize/signal"
)

const defaultHistoryLimit = 20

type resultResponse struct {
	ID              string          `json:"id,omitempty"`
	Instrument      string          `json:"instrument"`
	Direction       string          `json:"direction"`
	Entry           decimal.Decimal `json:"entry"`
	StopLoss        decimal.Decimal `json:"stop_loss"`
	Pips            decimal.Decimal `json:"pips"`
	AccountCurrency string          `json:"account_currency"`
	Rate            decimal.Decimal `json:"rate"`

	LotSize           decimal.Decimal `json:"lot_size"`
	AmountAtRisk      decimal.Decimal `json:"amount_at_risk"`
	PositionSizeUnits decimal.Decimal `json:"position_size_units"`
	StandardLots      decimal.Decimal `json:"standard_lots"`
	MiniLots          decimal.Decimal `json:"mini_lots"`
	MicroLots         decimal.Decimal `json:"micro_lots"`

	Display []risk.Field `json:"display"`
}

func newResultResponse(calc calculator.Calculation) resultResponse {
	res := calc.Result
	return resultResponse{
		ID:                calc.EntryID,
		Instrument:        res.Instrument.String(),
		Direction:         calc.Signal.Direction.String(),
		Entry:             calc.Signal.Entry,
		StopLoss:          calc.Signal.StopLoss,
		Pips:              res.Pips,
		AccountCurrency:   res.AccountCurrency,
		Rate:              res.Rate,
		LotSize:           res.LotSize,
		AmountAtRisk:      res.AmountAtRisk,
		PositionSizeUnits: res.PositionSizeUnits,
		StandardLots:      res.StandardLots,
		MiniLots:          res.MiniLots,
		MicroLots:         res.MicroLots,
		Display:           res.Display(),
	}
}

type preferencesBody struct {
	AccountBalance string `json:"account_balance"`
	RiskPercentage string `json:"risk_percentage"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) handleCalculate(c *gin.Context) {
	var in calculator.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "bad_request"})
		return
	}
	calc, err := s.session.Calculate(c.Request.Context(), in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newResultResponse(calc))
}

func (s *Server) handleReset(c *gin.Context) {
	if err := s.session.Reset(c.Request.Context()); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleResult(c *gin.Context) {
	calc, ok := s.session.Result()
	if !ok {
		c.JSON(http.StatusNotFound, errorResponse{Error: "no result", Code: "no_result"})
		return
	}
	c.JSON(http.StatusOK, newResultResponse(calc))
}

func (s *Server) handleGetPreferences(c *gin.Context) {
	p := s.session.Preferences()
	c.JSON(http.StatusOK, preferencesBody{AccountBalance: p.AccountBalance, RiskPercentage: p.RiskPercentage})
}

func (s *Server) handlePutPreferences(c *gin.Context) {
	var body preferencesBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "bad_request"})
		return
	}
	if err := s.session.UpdatePreferences(c.Request.Context(), body.AccountBalance, body.RiskPercentage); err != nil {
		s.fail(c, err)
		return
	}
	s.handleGetPreferences(c)
}

func (s *Server) handleHistory(c *gin.Context) {
	if s.history == nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: "journal disabled", Code: "journal_disabled"})
		return
	}
	limit := defaultHistoryLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer", Code: "bad_request"})
			return
		}
		limit = n
	}
	entries, err := s.history.List(c.Request.Context(), limit)
	if err != nil {
		s.fail(c, err)
		return
	}
	if entries == nil {
		entries = []journal.Entry{}
	}
	c.JSON(http.StatusOK, entries)
}

func (s *Server) fail(c *gin.Context, err error) {
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(status, errorResponse{Error: err.Error(), Code: code})
}

// classify maps domain errors to an HTTP status and a stable code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, signal.ErrInvalidAccountBalance):
		return http.StatusBadRequest, "invalid_account_balance"
	case errors.Is(err, signal.ErrInvalidInstrument):
		return http.StatusBadRequest, "invalid_instrument"
	case errors.Is(err, signal.ErrInvalidEntryPrice):
		return http.StatusBadRequest, "invalid_entry_price"
	case errors.Is(err, signal.ErrInvalidStopLoss):
		return http.StatusBadRequest, "invalid_stop_loss"
	case errors.Is(err, risk.ErrInvalidStopLossDistance):
		return http.StatusBadRequest, "invalid_stop_loss_distance"
	case errors.Is(err, risk.ErrInvalidRiskPercent):
		return http.StatusBadRequest, "invalid_risk_percent"
	case errors.Is(err, risk.ErrRateLookupFailed):
		return http.StatusBadGateway, "rate_lookup_failed"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
