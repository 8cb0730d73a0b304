package repositories

import (
	"context"

	"gorm.io/gorm"

	"travelog/internal/models/db_models"
	"travelog/internal/models/response_models"
	"travelog/pkg/utils"
)

type ChatRepository interface {
	CreateMessage(ctx context.Context, message *db_models.ChatMessage) error
	LatestBySession(ctx context.Context, sessionID string, limit int) ([]db_models.ChatMessage, error)
	HistoryBySession(ctx context.Context, sessionID string) ([]db_models.ChatMessage, error)
	DeleteSession(ctx context.Context, sessionID string) error
	SumTokensBySession(ctx context.Context, sessionID string) (int, error)
	ActiveSessions(ctx context.Context) ([]response_models.SessionSummary, error)
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) CreateMessage(ctx context.Context, message *db_models.ChatMessage) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// LatestBySession returns the most recent messages in chronological order,
// ready to forward as conversational context.
func (r *chatRepository) LatestBySession(ctx context.Context, sessionID string, limit int) ([]db_models.ChatMessage, error) {
	var messages []db_models.ChatMessage
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		// rowid breaks ties between messages written within the same second,
		// which every user/assistant pair is.
		Order("created_at desc, rowid desc").
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Reverse into chronological order.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *chatRepository) HistoryBySession(ctx context.Context, sessionID string) ([]db_models.ChatMessage, error) {
	var messages []db_models.ChatMessage
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at asc, rowid asc").
		Find(&messages).Error; err != nil {
		return nil, utils.ErrDatabaseError
	}
	return messages, nil
}

func (r *chatRepository) DeleteSession(ctx context.Context, sessionID string) error {
	result := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&db_models.ChatMessage{})
	if result.Error != nil {
		return utils.ErrDatabaseError
	}
	if result.RowsAffected == 0 {
		return utils.ErrSessionNotFound
	}
	return nil
}

func (r *chatRepository) SumTokensBySession(ctx context.Context, sessionID string) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&db_models.ChatMessage{}).
		Where("session_id = ?", sessionID).
		Select("COALESCE(SUM(token_count), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	return int(total), nil
}

func (r *chatRepository) ActiveSessions(ctx context.Context) ([]response_models.SessionSummary, error) {
	var summaries []response_models.SessionSummary
	err := r.db.WithContext(ctx).
		Model(&db_models.ChatMessage{}).
		Select("session_id, COUNT(*) AS messages, COALESCE(SUM(token_count), 0) AS tokens_used, MAX(created_at) AS last_activity").
		Group("session_id").
		Order("last_activity desc").
		Scan(&summaries).Error
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return summaries, nil
}
