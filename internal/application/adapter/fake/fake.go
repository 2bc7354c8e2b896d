// Package fake provides in-memory implementations of the adapter interfaces
// for use case tests.
package fake

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

// ErrStorage is returned by repositories whose Fail flag is set.
var ErrStorage = errors.New("storage unavailable")

// Clock is a fixed clock.
type Clock struct{ At time.Time }

// Now implements adapter.Clock.
func (c Clock) Now() time.Time { return c.At }

// Transactions is an in-memory adapter.TransactionRepository.
type Transactions struct {
	mu    sync.Mutex
	rows  map[uuid.UUID]*entity.Transaction
	Fail  bool
	Calls int
}

// NewTransactions creates an empty repository.
func NewTransactions(seed ...*entity.Transaction) *Transactions {
	r := &Transactions{rows: map[uuid.UUID]*entity.Transaction{}}
	for _, t := range seed {
		r.rows[t.ID] = t
	}
	return r
}

func (r *Transactions) fail() error {
	r.Calls++
	if r.Fail {
		return ErrStorage
	}
	return nil
}

func (r *Transactions) Create(_ context.Context, t *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail(); err != nil {
		return err
	}
	r.rows[t.ID] = t
	return nil
}

func (r *Transactions) CreateBatch(_ context.Context, ts []*entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail(); err != nil {
		return err
	}
	for _, t := range ts {
		r.rows[t.ID] = t
	}
	return nil
}

func (r *Transactions) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail(); err != nil {
		return nil, err
	}
	t, ok := r.rows[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	return t, nil
}

func (r *Transactions) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	return r.filter(func(t *entity.Transaction) bool { return t.UserID == userID })
}

func (r *Transactions) FindByUserAndMonth(_ context.Context, userID uuid.UUID, month valueobject.Month) ([]*entity.Transaction, error) {
	return r.filter(func(t *entity.Transaction) bool { return t.UserID == userID && t.Month == month })
}

func (r *Transactions) FindByUserAndMonthRange(_ context.Context, userID uuid.UUID, from, to valueobject.Month) ([]*entity.Transaction, error) {
	return r.filter(func(t *entity.Transaction) bool {
		return t.UserID == userID && !t.Month.Before(from) && !t.Month.After(to)
	})
}

func (r *Transactions) ListMonths(_ context.Context, userID uuid.UUID) ([]valueobject.Month, error) {
	all, err := r.filter(func(t *entity.Transaction) bool { return t.UserID == userID })
	if err != nil {
		return nil, err
	}
	seen := map[valueobject.Month]bool{}
	var out []valueobject.Month
	for _, t := range all {
		if !seen[t.Month] {
			seen[t.Month] = true
			out = append(out, t.Month)
		}
	}
	return out, nil
}

func (r *Transactions) Update(_ context.Context, t *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail(); err != nil {
		return err
	}
	if _, ok := r.rows[t.ID]; !ok {
		return domainerror.ErrTransactionNotFound
	}
	r.rows[t.ID] = t
	return nil
}

func (r *Transactions) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail(); err != nil {
		return err
	}
	if _, ok := r.rows[id]; !ok {
		return domainerror.ErrTransactionNotFound
	}
	delete(r.rows, id)
	return nil
}

// All returns every stored transaction ordered by date.
func (r *Transactions) All() []*entity.Transaction {
	out, _ := r.filter(func(*entity.Transaction) bool { return true })
	return out
}

func (r *Transactions) filter(keep func(*entity.Transaction) bool) ([]*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail(); err != nil {
		return nil, err
	}
	var out []*entity.Transaction
	for _, t := range r.rows {
		if keep(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

// Rules is an in-memory adapter.RecurringRuleRepository. DeleteCascade
// removes linked rows from the attached Transactions and Exclusions.
type Rules struct {
	mu           sync.Mutex
	rows         map[uuid.UUID]*entity.RecurringRule
	Transactions *Transactions
	Exclusions   *Exclusions
	Fail         bool
}

// NewRules creates a repository seeded with rules.
func NewRules(seed ...*entity.RecurringRule) *Rules {
	r := &Rules{rows: map[uuid.UUID]*entity.RecurringRule{}}
	for _, rule := range seed {
		r.rows[rule.ID] = rule
	}
	return r
}

func (r *Rules) Create(_ context.Context, rule *entity.RecurringRule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return ErrStorage
	}
	r.rows[rule.ID] = rule
	return nil
}

func (r *Rules) FindByID(_ context.Context, id uuid.UUID) (*entity.RecurringRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return nil, ErrStorage
	}
	rule, ok := r.rows[id]
	if !ok {
		return nil, domainerror.ErrRecurringRuleNotFound
	}
	return rule, nil
}

func (r *Rules) FindByUser(_ context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.RecurringRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return nil, ErrStorage
	}
	var out []*entity.RecurringRule
	for _, rule := range r.rows {
		if rule.UserID == userID && (!activeOnly || rule.IsActive) {
			out = append(out, rule)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out, nil
}

func (r *Rules) Update(_ context.Context, rule *entity.RecurringRule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return ErrStorage
	}
	if _, ok := r.rows[rule.ID]; !ok {
		return domainerror.ErrRecurringRuleNotFound
	}
	r.rows[rule.ID] = rule
	return nil
}

func (r *Rules) DeleteCascade(ctx context.Context, id uuid.UUID) (int64, error) {
	r.mu.Lock()
	rule, ok := r.rows[id]
	fail := r.Fail
	r.mu.Unlock()
	if fail {
		return 0, ErrStorage
	}
	if !ok {
		return 0, domainerror.ErrRecurringRuleNotFound
	}

	var removed int64
	if r.Transactions != nil {
		for _, t := range r.Transactions.All() {
			if t.IsRealInstanceOf(id) {
				_ = r.Transactions.Delete(ctx, t.ID)
				removed++
			}
		}
	}
	if r.Exclusions != nil {
		r.Exclusions.dropRule(rule.UserID, id)
	}

	r.mu.Lock()
	delete(r.rows, id)
	r.mu.Unlock()
	return removed, nil
}

// Exclusions is an in-memory adapter.ExclusionRepository.
type Exclusions struct {
	mu   sync.Mutex
	sets map[uuid.UUID]valueobject.ExclusionSet
	Fail bool
}

// NewExclusions creates an empty ledger.
func NewExclusions() *Exclusions {
	return &Exclusions{sets: map[uuid.UUID]valueobject.ExclusionSet{}}
}

func (r *Exclusions) Add(_ context.Context, userID uuid.UUID, key valueobject.PredictionKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return ErrStorage
	}
	if r.sets[userID] == nil {
		r.sets[userID] = valueobject.NewExclusionSet()
	}
	r.sets[userID].Add(key)
	return nil
}

func (r *Exclusions) Remove(_ context.Context, userID uuid.UUID, key valueobject.PredictionKey) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return false, ErrStorage
	}
	if !r.sets[userID].Contains(key) {
		return false, nil
	}
	delete(r.sets[userID], key)
	return true, nil
}

func (r *Exclusions) FindByUser(_ context.Context, userID uuid.UUID) (valueobject.ExclusionSet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return nil, ErrStorage
	}
	out := valueobject.NewExclusionSet()
	for k := range r.sets[userID] {
		out.Add(k)
	}
	return out, nil
}

func (r *Exclusions) dropRule(userID, ruleID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if set, ok := r.sets[userID]; ok {
		r.sets[userID] = set.Without(ruleID)
	}
}

// Sessions is an in-memory adapter.SessionStore.
type Sessions struct {
	mu         sync.Mutex
	months     map[uuid.UUID]valueobject.Month
	exclusions map[uuid.UUID]valueobject.ExclusionSet
	Fail       bool
}

// NewSessions creates an empty session store.
func NewSessions() *Sessions {
	return &Sessions{
		months:     map[uuid.UUID]valueobject.Month{},
		exclusions: map[uuid.UUID]valueobject.ExclusionSet{},
	}
}

func (s *Sessions) GetSelectedMonth(_ context.Context, userID uuid.UUID) (valueobject.Month, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return valueobject.Month{}, false, ErrStorage
	}
	m, ok := s.months[userID]
	return m, ok, nil
}

func (s *Sessions) SetSelectedMonth(_ context.Context, userID uuid.UUID, month valueobject.Month) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return ErrStorage
	}
	s.months[userID] = month
	return nil
}

func (s *Sessions) GetExclusions(_ context.Context, userID uuid.UUID) (valueobject.ExclusionSet, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return nil, false, ErrStorage
	}
	set, ok := s.exclusions[userID]
	return set, ok, nil
}

func (s *Sessions) SetExclusions(_ context.Context, userID uuid.UUID, set valueobject.ExclusionSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return ErrStorage
	}
	s.exclusions[userID] = set
	return nil
}

func (s *Sessions) Clear(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return ErrStorage
	}
	delete(s.months, userID)
	delete(s.exclusions, userID)
	return nil
}

// Budgets is an in-memory adapter.BudgetRepository.
type Budgets struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*entity.CategoryBudget
	Fail bool
}

// NewBudgets creates an empty repository.
func NewBudgets() *Budgets {
	return &Budgets{rows: map[uuid.UUID]*entity.CategoryBudget{}}
}

func (r *Budgets) Upsert(_ context.Context, b *entity.CategoryBudget) (*entity.CategoryBudget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return nil, ErrStorage
	}
	for _, existing := range r.rows {
		if existing.UserID == b.UserID && existing.Category == b.Category && existing.Month == b.Month {
			existing.BudgetValue = b.BudgetValue
			existing.AlertThreshold = b.AlertThreshold
			existing.UpdatedAt = b.UpdatedAt
			return existing, nil
		}
	}
	r.rows[b.ID] = b
	return b, nil
}

func (r *Budgets) FindByID(_ context.Context, id uuid.UUID) (*entity.CategoryBudget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return nil, ErrStorage
	}
	b, ok := r.rows[id]
	if !ok {
		return nil, domainerror.ErrBudgetNotFound
	}
	return b, nil
}

func (r *Budgets) FindByCategoryAndMonth(_ context.Context, userID uuid.UUID, category string, month valueobject.Month) (*entity.CategoryBudget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return nil, ErrStorage
	}
	for _, b := range r.rows {
		if b.UserID == userID && b.Category == category && b.Month == month {
			return b, nil
		}
	}
	return nil, domainerror.ErrBudgetNotFound
}

func (r *Budgets) FindByUserAndMonth(_ context.Context, userID uuid.UUID, month valueobject.Month) ([]*entity.CategoryBudget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return nil, ErrStorage
	}
	var out []*entity.CategoryBudget
	for _, b := range r.rows {
		if b.UserID == userID && b.Month == month {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

func (r *Budgets) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return ErrStorage
	}
	if _, ok := r.rows[id]; !ok {
		return domainerror.ErrBudgetNotFound
	}
	delete(r.rows, id)
	return nil
}

// Goals is an in-memory adapter.GoalRepository.
type Goals struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*entity.FinancialGoal
	Fail bool
}

// NewGoals creates an empty repository.
func NewGoals() *Goals {
	return &Goals{rows: map[uuid.UUID]*entity.FinancialGoal{}}
}

func (r *Goals) Create(_ context.Context, g *entity.FinancialGoal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return ErrStorage
	}
	r.rows[g.ID] = g
	return nil
}

func (r *Goals) FindByID(_ context.Context, id uuid.UUID) (*entity.FinancialGoal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return nil, ErrStorage
	}
	g, ok := r.rows[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	return g, nil
}

func (r *Goals) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.FinancialGoal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return nil, ErrStorage
	}
	var out []*entity.FinancialGoal
	for _, g := range r.rows {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *Goals) Update(_ context.Context, g *entity.FinancialGoal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return ErrStorage
	}
	r.rows[g.ID] = g
	return nil
}

func (r *Goals) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return ErrStorage
	}
	if _, ok := r.rows[id]; !ok {
		return domainerror.ErrGoalNotFound
	}
	delete(r.rows, id)
	return nil
}

// Categories is an in-memory adapter.CategoryRepository.
type Categories struct {
	mu     sync.Mutex
	rows   map[uuid.UUID]*entity.Category
	hidden map[uuid.UUID]map[string]bool
	Fail   bool
}

// NewCategories creates an empty repository.
func NewCategories() *Categories {
	return &Categories{
		rows:   map[uuid.UUID]*entity.Category{},
		hidden: map[uuid.UUID]map[string]bool{},
	}
}

func (r *Categories) Create(_ context.Context, c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return ErrStorage
	}
	r.rows[c.ID] = c
	return nil
}

func (r *Categories) FindByName(_ context.Context, userID uuid.UUID, name string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return nil, ErrStorage
	}
	for _, c := range r.rows {
		if c.UserID == userID && strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *Categories) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return nil, ErrStorage
	}
	var out []*entity.Category
	for _, c := range r.rows {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *Categories) Update(_ context.Context, c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return ErrStorage
	}
	r.rows[c.ID] = c
	return nil
}

func (r *Categories) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return ErrStorage
	}
	delete(r.rows, id)
	return nil
}

func (r *Categories) Hide(_ context.Context, userID uuid.UUID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return ErrStorage
	}
	if r.hidden[userID] == nil {
		r.hidden[userID] = map[string]bool{}
	}
	r.hidden[userID][name] = true
	return nil
}

func (r *Categories) Unhide(_ context.Context, userID uuid.UUID, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return false, ErrStorage
	}
	if !r.hidden[userID][name] {
		return false, nil
	}
	delete(r.hidden[userID], name)
	return true, nil
}

func (r *Categories) FindHidden(_ context.Context, userID uuid.UUID) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return nil, ErrStorage
	}
	var out []string
	for name := range r.hidden[userID] {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

// Users is an in-memory adapter.UserRepository.
type Users struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*entity.User
}

// NewUsers creates a repository seeded with users.
func NewUsers(seed ...*entity.User) *Users {
	r := &Users{rows: map[uuid.UUID]*entity.User{}}
	for _, u := range seed {
		r.rows[u.ID] = u
	}
	return r
}

func (r *Users) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[u.ID] = u
	return nil
}

func (r *Users) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.rows[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

func (r *Users) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.rows {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *Users) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	return err == nil, nil
}

// Emails records queued budget alerts.
type Emails struct {
	mu     sync.Mutex
	Alerts []adapter.QueueBudgetAlertInput
}

// QueueBudgetAlertEmail implements adapter.EmailService.
func (e *Emails) QueueBudgetAlertEmail(_ context.Context, input adapter.QueueBudgetAlertInput) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Alerts = append(e.Alerts, input)
	return nil
}

var (
	_ adapter.TransactionRepository   = (*Transactions)(nil)
	_ adapter.RecurringRuleRepository = (*Rules)(nil)
	_ adapter.ExclusionRepository     = (*Exclusions)(nil)
	_ adapter.SessionStore            = (*Sessions)(nil)
	_ adapter.BudgetRepository        = (*Budgets)(nil)
	_ adapter.GoalRepository          = (*Goals)(nil)
	_ adapter.CategoryRepository      = (*Categories)(nil)
	_ adapter.UserRepository          = (*Users)(nil)
	_ adapter.EmailService            = (*Emails)(nil)
	_ adapter.Clock                   = Clock{}
)

// Codec is an adapter.TransactionCodec returning canned records.
type Codec struct {
	Records []adapter.TransactionRecord
	Err     error
	Encoded []*entity.Transaction
}

// Encode records the transactions and writes one description per line.
func (c *Codec) Encode(w io.Writer, txns []*entity.Transaction) error {
	c.Encoded = txns
	for _, t := range txns {
		if _, err := io.WriteString(w, t.Description+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Decode returns the canned records or error.
func (c *Codec) Decode(io.Reader) ([]adapter.TransactionRecord, error) {
	return c.Records, c.Err
}

var _ adapter.TransactionCodec = (*Codec)(nil)

// Passwords is an adapter.PasswordService storing passwords as "hashed:"+plain.
type Passwords struct{}

func (Passwords) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (Passwords) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (Passwords) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("password too short")
	}
	return nil
}

// Tokens is an adapter.TokenService issuing opaque tokens.
type Tokens struct {
	mu      sync.Mutex
	issued  map[string]adapter.TokenClaims
	revoked map[string]bool
}

// NewTokens creates an empty token service.
func NewTokens() *Tokens {
	return &Tokens{issued: map[string]adapter.TokenClaims{}, revoked: map[string]bool{}}
}

func (s *Tokens) GenerateTokenPair(_ context.Context, userID uuid.UUID, email string, _ bool) (*adapter.TokenPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pair := &adapter.TokenPair{AccessToken: "access-" + uuid.NewString(), RefreshToken: "refresh-" + uuid.NewString()}
	claims := adapter.TokenClaims{UserID: userID, Email: email, ExpiresAt: time.Now().Add(time.Hour)}
	s.issued[pair.AccessToken] = claims
	s.issued[pair.RefreshToken] = claims
	return pair, nil
}

func (s *Tokens) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	return s.lookup(token)
}

func (s *Tokens) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	return s.lookup(token)
}

func (s *Tokens) InvalidateRefreshToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[token] = true
	return nil
}

func (s *Tokens) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.issued[token]
	return ok && !s.revoked[token], nil
}

func (s *Tokens) lookup(token string) (*adapter.TokenClaims, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	claims, ok := s.issued[token]
	if !ok {
		return nil, domainerror.ErrInvalidToken
	}
	return &claims, nil
}

// AccountData is an adapter.AccountDataRepository recording wiped users.
type AccountData struct {
	Cleared []uuid.UUID
	Fail    bool
}

func (a *AccountData) DeleteAllByUser(_ context.Context, userID uuid.UUID) error {
	if a.Fail {
		return ErrStorage
	}
	a.Cleared = append(a.Cleared, userID)
	return nil
}

var (
	_ adapter.PasswordService       = Passwords{}
	_ adapter.TokenService          = (*Tokens)(nil)
	_ adapter.AccountDataRepository = (*AccountData)(nil)
)
