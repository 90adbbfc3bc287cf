package bot

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"orderapp/internal/attendee"
	"orderapp/internal/order"
	"orderapp/internal/session"
)

const (
	cmdConfigureAttendees = "/設定出席者"
	cmdDone               = "完成"
	cmdClear              = "清除"

	promptMeeting       = "今日是否有會議？"
	promptAttendeeNames = "請輸入出席者名單（以空白或「・」分隔）"
	promptFormatHint    = "⚠️ 找不到可以統計的內容，請使用「名字：品項$金額」的格式重新輸入"

	// Free text up to this many runes counts as a manually added name.
	maxManualNameRunes = 6
)

// Affirmative answers to the meeting question. Anything else is a no.
var affirmatives = map[string]bool{
	"是":   true,
	"有":   true,
	"對":   true,
	"好":   true,
	"yes": true,
	"y":   true,
}

// Service is the conversational front of the reconciliation engine. It
// owns the per-user dialogue that collects attendee names when they are
// not derivable from the message itself.
type Service struct {
	sessions  session.Repository
	attendees *attendee.Store
	roster    attendee.RosterRepository
	tally     *order.Service
	ttl       time.Duration

	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

func NewService(
	sessions session.Repository,
	attendees *attendee.Store,
	roster attendee.RosterRepository,
	tally *order.Service,
	ttl time.Duration,
) *Service {
	return &Service{
		sessions:  sessions,
		attendees: attendees,
		roster:    roster,
		tally:     tally,
		ttl:       ttl,
		userLocks: make(map[string]*sync.Mutex),
	}
}

// HandleText processes one inbound message for one user. Messages from
// the same user are serialized; different users never block each other.
func (s *Service) HandleText(ctx context.Context, userID, text string) Action {
	lock := s.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	sess := s.sessionFor(userID)

	switch sess.State {
	case session.StateAwaitingMeetingConfirmation:
		return s.handleMeetingAnswer(sess, text)
	case session.StateAwaitingAttendeeNames:
		return s.handleAttendeeNames(sess, text)
	default:
		return s.handleIdle(ctx, sess, text)
	}
}

// ListSessions exposes the pending-session table for the admin surface.
func (s *Service) ListSessions() ([]*session.Session, error) {
	return s.sessions.List()
}

// ResetSession force-clears a stuck session.
func (s *Service) ResetSession(userID string) error {
	lock := s.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	return s.sessions.Delete(userID)
}

// --------------------------------------------------
// Idle dispatch
// --------------------------------------------------
func (s *Service) handleIdle(ctx context.Context, sess *session.Session, text string) Action {
	trimmed := strings.TrimSpace(text)

	switch trimmed {
	case cmdConfigureAttendees:
		return s.rosterPrompt(ctx)
	case cmdDone:
		names := s.attendees.List(sess.UserID)
		if len(names) == 0 {
			return Prompt("⚠️ 尚未選擇任何出席者！")
		}
		return Prompt("出席者設定完成：\n" + strings.Join(names, ", "))
	case cmdClear:
		s.attendees.Clear(sess.UserID)
		return Prompt("🗑️ 已清除出席者名單")
	}

	if isOrderText(text) {
		return s.startOrder(sess, text)
	}

	// Short free text is a manually added attendee name.
	if trimmed != "" && utf8.RuneCountInString(trimmed) <= maxManualNameRunes {
		if s.attendees.Add(sess.UserID, trimmed) {
			return Prompt("✅ 已加入自填出席者：" + trimmed)
		}
		return Ignored()
	}

	return Ignored()
}

func (s *Service) startOrder(sess *session.Session, text string) Action {
	// Inline divider fixes attendance per section; no dialogue needed.
	if order.HasDivider(text) {
		s.discard(sess)
		return s.renderLedger(s.tally.TallySections(text))
	}

	// A pre-configured attendee set also resolves attendance directly.
	if set := s.attendees.Snapshot(sess.UserID); set != nil && set.Len() > 0 {
		s.discard(sess)
		return s.renderLedger(s.tally.TallyWithSet(text, set))
	}

	// Attendance unknown: hold the order and ask.
	sess.State = session.StateAwaitingMeetingConfirmation
	sess.PendingOrder = text
	s.sessions.Save(sess)
	return Prompt(promptMeeting)
}

// --------------------------------------------------
// Meeting confirmation step
// --------------------------------------------------
func (s *Service) handleMeetingAnswer(sess *session.Session, text string) Action {
	// A fresh order submission overwrites the pending one.
	if isOrderText(text) {
		return s.startOrder(sess, text)
	}

	if isAffirmative(text) {
		sess.State = session.StateAwaitingAttendeeNames
		s.sessions.Save(sess)
		return Prompt(promptAttendeeNames)
	}

	// Anything else counts as "no meeting": everyone is a non-attendee.
	return s.resolve(sess, attendee.NewSet())
}

// --------------------------------------------------
// Attendee name collection step
// --------------------------------------------------
func (s *Service) handleAttendeeNames(sess *session.Session, text string) Action {
	if isOrderText(text) {
		return s.startOrder(sess, text)
	}

	return s.resolve(sess, attendee.NewSet(splitNames(text)...))
}

func (s *Service) resolve(sess *session.Session, set *attendee.Set) Action {
	ledger := s.tally.TallyWithSet(sess.PendingOrder, set)
	s.discard(sess)
	return s.renderLedger(ledger)
}

// discard drops a pending dialogue, if any.
func (s *Service) discard(sess *session.Session) {
	if sess.State == session.StateIdle {
		return
	}
	sess.Reset()
	s.sessions.Delete(sess.UserID)
}

func (s *Service) renderLedger(ledger *order.Ledger) Action {
	if ledger.Empty() {
		return Prompt(promptFormatHint)
	}
	return Summary(ledger.Render())
}

func (s *Service) rosterPrompt(ctx context.Context) Action {
	candidates, err := s.roster.Candidates(ctx)
	if err != nil || len(candidates) == 0 {
		return Prompt("請直接輸入出席者姓名（每則訊息一位）")
	}

	return Prompt(fmt.Sprintf(
		"請選擇今日出席者：\n%s\n\n直接輸入名字加入，輸入「%s」確認，輸入「%s」重設",
		strings.Join(candidates, "、"), cmdDone, cmdClear,
	))
}

// sessionFor loads the user's session, treating missing or expired
// entries as a fresh idle session.
func (s *Service) sessionFor(userID string) *session.Session {
	sess, err := s.sessions.Get(userID)
	if err != nil || (s.ttl > 0 && time.Since(sess.UpdatedAt) > s.ttl) {
		return &session.Session{UserID: userID, State: session.StateIdle}
	}
	return sess
}

func (s *Service) lockFor(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	return lock
}

// isOrderText reports whether a message looks like an order chain:
// it carries both the name/item separator and the currency marker.
func isOrderText(text string) bool {
	return strings.Contains(text, "：") && strings.Contains(text, "$")
}

func isAffirmative(text string) bool {
	return affirmatives[strings.ToLower(strings.TrimSpace(text))]
}

// splitNames breaks an attendee answer on whitespace, the interpunct
// and the enumeration comma.
func splitNames(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' ||
			r == '　' || r == '・' || r == '、'
	})
}
