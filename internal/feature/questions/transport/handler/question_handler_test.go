package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	authentity "askbox_backend/internal/feature/auth/domain/entity"
	"askbox_backend/internal/feature/questions/domain/entity"
	"askbox_backend/internal/feature/questions/usecase"
	jwtmw "askbox_backend/internal/platform/jwt"
)

// mockQuestionsUsecase is a mock implementation of the QuestionsUsecase interface.
type mockQuestionsUsecase struct {
	AskFunc                    func(ctx context.Context, askerID uint, targetUsername, text string) error
	ListPendingFunc            func(ctx context.Context, ownerID uint) ([]entity.AskedQuestion, error)
	ListAnsweredByUsernameFunc func(ctx context.Context, username string) ([]entity.AskedQuestion, error)
	AnswerFunc                 func(ctx context.Context, questionID, requesterID uint, text string) ([]entity.AskedQuestion, error)
	DeleteFunc                 func(ctx context.Context, questionID, requesterID uint) ([]entity.AskedQuestion, error)
}

func (m *mockQuestionsUsecase) Ask(ctx context.Context, askerID uint, targetUsername, text string) error {
	if m.AskFunc != nil {
		return m.AskFunc(ctx, askerID, targetUsername, text)
	}
	return nil
}

func (m *mockQuestionsUsecase) ListPending(ctx context.Context, ownerID uint) ([]entity.AskedQuestion, error) {
	if m.ListPendingFunc != nil {
		return m.ListPendingFunc(ctx, ownerID)
	}
	return []entity.AskedQuestion{}, nil
}

func (m *mockQuestionsUsecase) ListAnsweredByUsername(ctx context.Context, username string) ([]entity.AskedQuestion, error) {
	if m.ListAnsweredByUsernameFunc != nil {
		return m.ListAnsweredByUsernameFunc(ctx, username)
	}
	return nil, usecase.ErrUserNotFound
}

func (m *mockQuestionsUsecase) Answer(ctx context.Context, questionID, requesterID uint, text string) ([]entity.AskedQuestion, error) {
	if m.AnswerFunc != nil {
		return m.AnswerFunc(ctx, questionID, requesterID, text)
	}
	return nil, usecase.ErrQuestionNotFound
}

func (m *mockQuestionsUsecase) Delete(ctx context.Context, questionID, requesterID uint) ([]entity.AskedQuestion, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, questionID, requesterID)
	}
	return nil, usecase.ErrQuestionNotFound
}

// asUser simulates the auth middleware by storing a profile in the context.
func asUser(id uint, username string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(jwtmw.ContextUser, &authentity.Profile{ID: id, Username: username})
		c.Next()
	}
}

func newQuestionRouter(uc QuestionsUsecase, authed gin.HandlerFunc) *gin.Engine {
	h := NewQuestionHandler(uc)
	r := gin.New()
	r.GET("/answers/:username", h.ListAnswered)

	group := r.Group("/")
	if authed != nil {
		group.Use(authed)
	}
	group.POST("/questions", h.Post)
	group.GET("/questions", h.ListPending)
	group.PATCH("/questions/:id", h.Answer)
	group.DELETE("/questions/:id", h.Delete)
	return r
}

func TestQuestionHandler_Post(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		authed         gin.HandlerFunc
		requestBody    gin.H
		mockAskFunc    func(ctx context.Context, askerID uint, targetUsername, text string) error
		expectedStatus int
	}{
		{
			name:        "success: question asked",
			authed:      asUser(2, "bob"),
			requestBody: gin.H{"question": "hi", "username": "alice"},
			mockAskFunc: func(ctx context.Context, askerID uint, targetUsername, text string) error {
				if askerID != 2 || targetUsername != "alice" || text != "hi" {
					t.Errorf("unexpected ask: askerID=%d target=%q text=%q", askerID, targetUsername, text)
				}
				return nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: not signed in",
			authed:         nil,
			requestBody:    gin.H{"question": "hi", "username": "alice"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:        "failure: unknown target user",
			authed:      asUser(2, "bob"),
			requestBody: gin.H{"question": "hi", "username": "ghost"},
			mockAskFunc: func(ctx context.Context, askerID uint, targetUsername, text string) error {
				return usecase.ErrUserNotFound
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "failure: missing question text",
			authed:         asUser(2, "bob"),
			requestBody:    gin.H{"username": "alice"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: internal error is not surfaced as success",
			authed:      asUser(2, "bob"),
			requestBody: gin.H{"question": "hi", "username": "alice"},
			mockAskFunc: func(ctx context.Context, askerID uint, targetUsername, text string) error {
				return errors.New("database down")
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newQuestionRouter(&mockQuestionsUsecase{AskFunc: tt.mockAskFunc}, tt.authed)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/questions", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var responseBody gin.H
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
				assert.Equal(t, "Question successfully asked!", responseBody["message"])
				// The asker's identity is never echoed back
				assert.NotContains(t, w.Body.String(), "asker")
			}
		})
	}
}

func TestQuestionHandler_ListPending(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns only the caller's pending questions", func(t *testing.T) {
		mockUC := &mockQuestionsUsecase{
			ListPendingFunc: func(ctx context.Context, ownerID uint) ([]entity.AskedQuestion, error) {
				assert.Equal(t, uint(10), ownerID)
				return []entity.AskedQuestion{
					{ID: 1, Question: "hi", AskerUsername: "bob"},
				}, nil
			},
		}
		router := newQuestionRouter(mockUC, asUser(10, "alice"))

		req, _ := http.NewRequest(http.MethodGet, "/questions", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var list []entity.AskedQuestion
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		assert.Len(t, list, 1)
		assert.Equal(t, "hi", list[0].Question)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		router := newQuestionRouter(&mockQuestionsUsecase{}, nil)

		req, _ := http.NewRequest(http.MethodGet, "/questions", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestQuestionHandler_ListAnswered(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("public answered list", func(t *testing.T) {
		mockUC := &mockQuestionsUsecase{
			ListAnsweredByUsernameFunc: func(ctx context.Context, username string) ([]entity.AskedQuestion, error) {
				assert.Equal(t, "alice", username)
				return []entity.AskedQuestion{
					{ID: 2, Question: "newest", Answer: "a2", IsAnswered: true},
					{ID: 1, Question: "oldest", Answer: "a1", IsAnswered: true},
				}, nil
			},
		}
		router := newQuestionRouter(mockUC, nil)

		req, _ := http.NewRequest(http.MethodGet, "/answers/alice", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var list []entity.AskedQuestion
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		assert.Len(t, list, 2)
		assert.Equal(t, "newest", list[0].Question)
	})

	t.Run("unknown user returns 404", func(t *testing.T) {
		router := newQuestionRouter(&mockQuestionsUsecase{}, nil)

		req, _ := http.NewRequest(http.MethodGet, "/answers/ghost", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestQuestionHandler_Answer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		questionID     string
		requestBody    gin.H
		mockAnswerFunc func(ctx context.Context, questionID, requesterID uint, text string) ([]entity.AskedQuestion, error)
		expectedStatus int
	}{
		{
			name:        "success: owner answers and receives refreshed pending list",
			questionID:  "5",
			requestBody: gin.H{"answer": "hello"},
			mockAnswerFunc: func(ctx context.Context, questionID, requesterID uint, text string) ([]entity.AskedQuestion, error) {
				if questionID != 5 || requesterID != 10 || text != "hello" {
					t.Errorf("unexpected answer call: id=%d requester=%d text=%q", questionID, requesterID, text)
				}
				return []entity.AskedQuestion{}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: unknown question",
			questionID:     "404",
			requestBody:    gin.H{"answer": "hello"},
			mockAnswerFunc: nil, // Default mock: ErrQuestionNotFound
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "failure: non-numeric id",
			questionID:     "abc",
			requestBody:    gin.H{"answer": "hello"},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "failure: missing answer text",
			questionID:     "5",
			requestBody:    gin.H{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: whitespace-only answer",
			questionID:  "5",
			requestBody: gin.H{"answer": "   "},
			mockAnswerFunc: func(ctx context.Context, questionID, requesterID uint, text string) ([]entity.AskedQuestion, error) {
				return nil, usecase.ErrEmptyAnswer
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: requester is not the owner",
			questionID:  "5",
			requestBody: gin.H{"answer": "hello"},
			mockAnswerFunc: func(ctx context.Context, questionID, requesterID uint, text string) ([]entity.AskedQuestion, error) {
				return nil, usecase.ErrNotOwner
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newQuestionRouter(&mockQuestionsUsecase{AnswerFunc: tt.mockAnswerFunc}, asUser(10, "alice"))

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPatch, "/questions/"+tt.questionID, bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestQuestionHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		questionID     string
		mockDeleteFunc func(ctx context.Context, questionID, requesterID uint) ([]entity.AskedQuestion, error)
		expectedStatus int
	}{
		{
			name:       "success: owner deletes and receives refreshed pending list",
			questionID: "5",
			mockDeleteFunc: func(ctx context.Context, questionID, requesterID uint) ([]entity.AskedQuestion, error) {
				return []entity.AskedQuestion{}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: unknown question",
			questionID:     "404",
			mockDeleteFunc: nil, // Default mock: ErrQuestionNotFound
			expectedStatus: http.StatusNotFound,
		},
		{
			name:       "failure: requester is not the owner",
			questionID: "5",
			mockDeleteFunc: func(ctx context.Context, questionID, requesterID uint) ([]entity.AskedQuestion, error) {
				return nil, usecase.ErrNotOwner
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newQuestionRouter(&mockQuestionsUsecase{DeleteFunc: tt.mockDeleteFunc}, asUser(10, "alice"))

			req, _ := http.NewRequest(http.MethodDelete, "/questions/"+tt.questionID, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
