// Package knowledge persists the question/answer base and the chat log.
package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gaonkarsahil14/CODTECH/internal/config"
)

// Record is one stored question/answer pair. The short JSON keys are the
// on-disk format of knowledge.json and must not change.
type Record struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}

// Base is the ordered knowledge base for a session. Insertion order is
// preserved across save/load cycles.
type Base []Record

// Store reads and writes the knowledge file and appends to the chat log.
// All paths come from the config so tests can point it at a temp dir.
type Store struct {
	knowledgePath string
	logPath       string
	seedPath      string
	sessionID     string
	logger        *logrus.Logger

	mu            sync.Mutex
	suppressUntil time.Time
}

func NewStore(cfg *config.Config, logger *logrus.Logger) *Store {
	if logger == nil {
		logger = logrus.New()
	}
	return &Store{
		knowledgePath: cfg.KnowledgePath(),
		logPath:       cfg.ChatLogPath(),
		seedPath:      cfg.SeedPath(),
		sessionID:     uuid.NewString(),
		logger:        logger,
	}
}

// SessionID identifies this store's chat-log session.
func (s *Store) SessionID() string {
	return s.sessionID
}

// Load reads the persisted knowledge base. A missing file seeds and
// persists the starter set; an unreadable or malformed file degrades to
// an empty base with a warning. Load never fails the session.
func (s *Store) Load() Base {
	data, err := os.ReadFile(s.knowledgePath)
	if err != nil {
		if os.IsNotExist(err) {
			starter := s.starterBase()
			if saveErr := s.Save(starter); saveErr != nil {
				s.logger.WithError(saveErr).Warn("could not persist starter knowledge")
			}
			return starter
		}
		s.logger.WithError(err).WithField("path", s.knowledgePath).Warn("failed to read knowledge file")
		return Base{}
	}

	var base Base
	if err := json.Unmarshal(data, &base); err != nil {
		s.logger.WithError(err).WithField("path", s.knowledgePath).Warn("knowledge file is not a valid record list")
		return Base{}
	}
	return base
}

// Save writes the whole base atomically: marshal to a temp file in the
// same directory, then rename over the target. A reader never observes a
// partial file. The returned error is a status for the caller to report;
// Save itself never aborts the session.
func (s *Store) Save(base Base) error {
	data, err := json.MarshalIndent(base, "", "  ")
	if err != nil {
		return fmt.Errorf("encode knowledge: %w", err)
	}

	dir := filepath.Dir(s.knowledgePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".knowledge-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write knowledge: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	s.mu.Lock()
	s.suppressUntil = time.Now().Add(watchSuppressWindow)
	s.mu.Unlock()

	if err := os.Rename(tmpName, s.knowledgePath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace knowledge file: %w", err)
	}
	return nil
}

// AppendLog appends one timestamped USER/BOT line pair to the chat log.
// Logging is best-effort: failures are warned about and swallowed so the
// dialogue never blocks on the audit trail.
func (s *Store) AppendLog(userText, botResponse string) {
	f, err := os.OpenFile(s.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		s.logger.WithError(err).Warn("could not open chat log")
		return
	}
	defer f.Close()

	ts := time.Now().Format("2006-01-02 15:04:05")
	_, err = fmt.Fprintf(f, "[%s] USER: %s\n[%s] BOT: %s\n", ts, userText, ts, botResponse)
	if err != nil {
		s.logger.WithError(err).Warn("could not append to chat log")
	}
}

// LogSessionStart writes a session header so interleaved runs are
// distinguishable when reading the log by hand.
func (s *Store) LogSessionStart() {
	f, err := os.OpenFile(s.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		s.logger.WithError(err).Warn("could not open chat log")
		return
	}
	defer f.Close()

	ts := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(f, "[%s] --- session %s ---\n", ts, s.sessionID)
}
