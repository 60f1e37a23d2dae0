package quizgen

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/sharc777/allam-lambda/internal/auth"
	"github.com/sharc777/allam-lambda/internal/config"
	"github.com/sharc777/allam-lambda/internal/llm"
)

const (
	msgInvalidRequest = "الطلب غير صالح"
	msgUnauthorized   = "يجب تسجيل الدخول أولاً"
	msgLessonNotFound = "المحتوى المطلوب غير موجود"
	msgRateLimited    = "تم تجاوز حد الطلبات، يرجى المحاولة بعد قليل"
	msgQuota          = "نفد رصيد خدمة الذكاء الاصطناعي، يرجى التواصل مع الإدارة"
	msgInsufficient   = "تعذر توليد عدد كافٍ من الأسئلة الصالحة، يرجى المحاولة مرة أخرى"
	msgUnknown        = "حدث خطأ غير متوقع أثناء توليد الأسئلة"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, msgUnauthorized, "")
		return
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		config.Error(w, http.StatusUnauthorized, msgUnauthorized, "invalid subject")
		return
	}

	var body GenerateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		config.Error(w, http.StatusBadRequest, msgInvalidRequest, "invalid request body")
		return
	}

	req, err := Normalize(userID, body)
	if err != nil {
		config.Error(w, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}

	resp, err := h.service.GenerateQuiz(r.Context(), req)
	if err != nil {
		status, message, details := errorResponse(err)
		if status >= http.StatusInternalServerError {
			log.WithError(err).Error("quiz generation failed")
		}
		config.Error(w, status, message, details)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func errorResponse(err error) (int, string, string) {
	var short *InsufficientError
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, msgInvalidRequest, err.Error()
	case errors.Is(err, ErrLessonNotFound):
		return http.StatusNotFound, msgLessonNotFound, ""
	case errors.Is(err, llm.ErrRateLimited):
		return http.StatusTooManyRequests, msgRateLimited, "rate limit exceeded"
	case errors.Is(err, llm.ErrQuotaExhausted):
		return http.StatusPaymentRequired, msgQuota, "payment required"
	case errors.As(err, &short):
		return http.StatusInternalServerError, msgInsufficient, short.Error()
	default:
		return http.StatusInternalServerError, msgUnknown, ""
	}
}
