package tutor

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/sharc777/allam-lambda/internal/auth"
	"github.com/sharc777/allam-lambda/internal/config"
	"github.com/sharc777/allam-lambda/internal/llm"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "يجب تسجيل الدخول أولاً", "")
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "الطلب غير صالح", "invalid request body")
		return
	}

	resp, err := h.service.Reply(r.Context(), claims.UserID, req)
	var limited *RateLimitedError
	switch {
	case err == nil:
		config.JSON(w, http.StatusOK, resp)
	case errors.Is(err, ErrNoMessages):
		config.Error(w, http.StatusBadRequest, "الطلب غير صالح", err.Error())
	case errors.As(err, &limited):
		w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(limited.RetryAfter.Seconds()))))
		config.Error(w, http.StatusTooManyRequests, "لقد تجاوزت عدد الرسائل المسموح به، يرجى الانتظار قليلاً", "rate limit exceeded")
	case errors.Is(err, llm.ErrRateLimited):
		config.Error(w, http.StatusTooManyRequests, "تم تجاوز حد الطلبات، يرجى المحاولة بعد قليل", "rate limit exceeded")
	case errors.Is(err, llm.ErrQuotaExhausted):
		config.Error(w, http.StatusPaymentRequired, "نفد رصيد خدمة الذكاء الاصطناعي، يرجى التواصل مع الإدارة", "payment required")
	default:
		log.WithError(err).Error("tutor reply failed")
		config.Error(w, http.StatusInternalServerError, "حدث خطأ غير متوقع", "")
	}
}
