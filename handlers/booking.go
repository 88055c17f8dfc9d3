package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"bestdental/middleware"
	"bestdental/services/booking"
	"bestdental/services/bookingform"
	"bestdental/services/site"
	"bestdental/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

var errNullBody = errors.New("request body is null")

// BookingResponse is the success body of POST /api/book.
type BookingResponse struct {
	OK          bool   `json:"ok"`
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsappUrl"`
}

var statusByCode = map[booking.Code]int{
	booking.CodeMissingFields: http.StatusBadRequest,
	booking.CodeInvalidFormat: http.StatusBadRequest,
	booking.CodeRateLimited:   http.StatusTooManyRequests,
	booking.CodeInternal:      http.StatusInternalServerError,
}

func statusFor(err error) int {
	if status, ok := statusByCode[booking.CodeOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// BookingHandler serves the booking endpoint, its schema and the no-JS form.
type BookingHandler struct {
	BookingSvc booking.BookingService
	Site       site.SiteService
	Metrics    *middleware.Metrics
	Now        func() time.Time
}

func NewBookingHandler(svc booking.BookingService, siteSvc site.SiteService, metrics *middleware.Metrics) *BookingHandler {
	return &BookingHandler{
		BookingSvc: svc,
		Site:       siteSvc,
		Metrics:    metrics,
		Now:        time.Now,
	}
}

func (h *BookingHandler) fail(c *gin.Context, err error) {
	code := booking.CodeOf(err)
	h.Metrics.BookingOutcome(string(code))
	if code == booking.CodeRateLimited {
		h.Metrics.RateLimitHit("booking")
	}
	utils.JSONError(c, statusFor(err), booking.PublicMessage(err))
}

// bindBooking decodes the JSON body. A literal null is not a booking.
func bindBooking(c *gin.Context) (booking.Request, error) {
	var req booking.Request
	raw, err := c.GetRawData()
	if err != nil {
		return req, err
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return req, errNullBody
	}
	err = binding.JSON.BindBody(raw, &req)
	return req, err
}

// SubmitBooking handles POST /api/book. The rate limit is applied before
// the body is read, so malformed requests still count against the caller.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	logger := getLogger(c)
	ctx := c.Request.Context()
	caller := middleware.CallerKey(c.Request)

	if err := h.BookingSvc.Admit(ctx, caller); err != nil {
		h.fail(c, err)
		return
	}

	req, err := bindBooking(c)
	if err != nil {
		logger.Error("SubmitBooking: invalid request body", zap.String("caller", caller), zap.Error(err))
		h.fail(c, booking.NewInternalError(err))
		return
	}

	res, err := h.BookingSvc.Process(ctx, caller, req)
	if err != nil {
		if booking.CodeOf(err) == booking.CodeInternal {
			logger.Error("SubmitBooking: processing failed", zap.Error(err))
		}
		h.fail(c, err)
		return
	}

	h.Metrics.BookingOutcome("ok")
	c.JSON(http.StatusOK, BookingResponse{
		OK:          true,
		Message:     res.Message,
		WhatsAppURL: res.WhatsAppURL,
	})
}

// GetBookingSchema handles GET /api/booking/schema.
func (h *BookingHandler) GetBookingSchema(c *gin.Context) {
	c.JSON(http.StatusOK, h.Site.BookingSchema(h.Now()))
}

// SubmitBookingForm handles POST /book, the form-encoded fallback used when
// the browser script is not running. It drives the same form state machine
// and re-renders the booking page.
func (h *BookingHandler) SubmitBookingForm(c *gin.Context) {
	logger := getLogger(c)

	var req booking.Request
	if err := c.ShouldBind(&req); err != nil {
		logger.Warn("SubmitBookingForm: unreadable form", zap.Error(err))
	}

	form := bookingform.New(bookingform.ServiceSubmitter{
		Service:   h.BookingSvc,
		CallerKey: middleware.CallerKey(c.Request),
	})
	for _, field := range booking.Fields {
		form.Set(field, req.Get(field))
	}

	state := form.Submit(c.Request.Context())
	view := form.View()
	if state == bookingform.Success {
		h.Metrics.BookingOutcome("ok")
	}

	status := http.StatusOK
	if view.Error == booking.MsgRateLimited {
		status = http.StatusTooManyRequests
	}
	c.HTML(status, "book.html", pageData(h.Site, "Book an Appointment", gin.H{
		"Form":           view,
		"BookingOptions": h.Site.BookingOptions(),
		"MinDate":        h.Now().Format("2006-01-02"),
	}))
}

// BookingPage handles GET /book.
func (h *BookingHandler) BookingPage(c *gin.Context) {
	c.HTML(http.StatusOK, "book.html", pageData(h.Site, "Book an Appointment", gin.H{
		"Form":           bookingform.Blank(),
		"BookingOptions": h.Site.BookingOptions(),
		"MinDate":        h.Now().Format("2006-01-02"),
	}))
}
