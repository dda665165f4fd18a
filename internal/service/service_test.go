package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/timmy/goodjob/internal/domain"
	"github.com/timmy/goodjob/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// newTestDB opens a fresh in-memory SQLite database with the full
// schema migrated. Each call gets its own database so tests stay
// independent.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:goodjob_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(
		&domain.Status{},
		&domain.Job{},
		&domain.StatusHistoryEntry{},
		&domain.PrepTodo{},
		&domain.DashboardTodo{},
		&domain.InterviewQuestion{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// testEnv bundles the services wired against one test database.
type testEnv struct {
	statusService   *StatusService
	jobService      *JobService
	prepService     *PrepTodoService
	todoService     *DashboardTodoService
	questionService *QuestionService
	calendarService *CalendarService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)

	statusRepo := repository.NewStatusRepository(db)
	jobRepo := repository.NewJobRepository(db)
	prepRepo := repository.NewPrepTodoRepository(db)
	todoRepo := repository.NewDashboardTodoRepository(db)
	questionRepo := repository.NewQuestionRepository(db)

	return &testEnv{
		statusService:   NewStatusService(statusRepo, jobRepo),
		jobService:      NewJobService(jobRepo, prepRepo, statusRepo),
		prepService:     NewPrepTodoService(prepRepo, jobRepo),
		todoService:     NewDashboardTodoService(todoRepo),
		questionService: NewQuestionService(questionRepo),
		calendarService: NewCalendarService(jobRepo, statusRepo),
	}
}
