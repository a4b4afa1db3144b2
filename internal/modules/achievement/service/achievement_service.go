package service

import (
	"context"
	"sort"
	"time"

	"pento/internal/modules/achievement/domain"
	"pento/internal/modules/achievement/dto"
	achievementout "pento/internal/modules/achievement/port/out"
	"pento/internal/platform/clock"
)

type AchievementService struct {
	clock  clock.Clock
	ledger achievementout.LedgerStore
	queue  achievementout.QueueStore
}

func NewAchievementService(clock clock.Clock, ledger achievementout.LedgerStore, queue achievementout.QueueStore) *AchievementService {
	return &AchievementService{clock: clock, ledger: ledger, queue: queue}
}

// Unlock records the achievement and returns true only when this call
// performed the unlock. A repeat call mutates nothing and skips the
// persistence write entirely.
func (s *AchievementService) Unlock(ctx context.Context, id string) (bool, error) {
	unlocked, err := s.ledger.Load(ctx)
	if err != nil {
		return false, err
	}
	if _, ok := unlocked[id]; ok {
		return false, nil
	}
	unlocked[id] = s.clock.Now()
	if err := s.ledger.Save(ctx, unlocked); err != nil {
		return false, err
	}
	return true, nil
}

func (s *AchievementService) IsUnlocked(ctx context.Context, id string) (bool, error) {
	unlocked, err := s.ledger.Load(ctx)
	if err != nil {
		return false, err
	}
	_, ok := unlocked[id]
	return ok, nil
}

func (s *AchievementService) Unlocked(ctx context.Context) (map[string]time.Time, error) {
	return s.ledger.Load(ctx)
}

// Evaluate runs every predicate against the fresh snapshot. senseiTotal is
// the number of senseis in the catalog, consumed by the cross-sensei check.
func (s *AchievementService) Evaluate(ctx context.Context, input dto.EvaluateInput, senseiTotal int) ([]string, error) {
	newly := []string{}
	attempt := func(satisfied bool, id string) error {
		if !satisfied {
			return nil
		}
		fresh, err := s.Unlock(ctx, id)
		if err != nil {
			return err
		}
		if fresh {
			newly = append(newly, id)
		}
		return nil
	}

	if err := attempt(input.Stats.TotalSessions == 1, domain.IDFirstBlood); err != nil {
		return nil, err
	}

	thresholds := make([]int, 0, len(domain.WordMilestones))
	for threshold := range domain.WordMilestones {
		thresholds = append(thresholds, threshold)
	}
	sort.Ints(thresholds)
	for _, threshold := range thresholds {
		if err := attempt(input.Stats.TotalWords >= threshold, domain.WordMilestones[threshold]); err != nil {
			return nil, err
		}
	}

	if err := attempt(input.Session.WordCount >= domain.MarathonWords, domain.IDMarathon); err != nil {
		return nil, err
	}
	if err := attempt(input.Stats.CurrentStreak >= domain.HabitStreakDays, domain.IDHabit); err != nil {
		return nil, err
	}
	if err := attempt(input.Stats.CurrentStreak >= domain.ProfessionalStreak, domain.IDProfessional); err != nil {
		return nil, err
	}

	perSensei := map[string]int{}
	for _, item := range input.History {
		perSensei[item.SenseiID]++
	}
	senseiIDs := make([]string, 0, len(perSensei))
	for senseiID := range perSensei {
		senseiIDs = append(senseiIDs, senseiID)
	}
	sort.Strings(senseiIDs)
	for _, senseiID := range senseiIDs {
		id, ok := domain.SenseiMilestones[senseiID]
		if !ok {
			continue
		}
		if err := attempt(perSensei[senseiID] >= domain.SenseiSessionGoal, id); err != nil {
			return nil, err
		}
	}
	if err := attempt(senseiTotal > 0 && len(perSensei) >= senseiTotal, domain.IDGenreHopper); err != nil {
		return nil, err
	}

	hour := s.clock.Now().Hour()
	if err := attempt(domain.InNightWindow(hour), domain.IDNightOwl); err != nil {
		return nil, err
	}
	if err := attempt(domain.InEarlyWindow(hour), domain.IDEarlyBird); err != nil {
		return nil, err
	}

	if len(newly) > 0 {
		if err := s.enqueue(ctx, newly); err != nil {
			return nil, err
		}
	}
	return newly, nil
}

func (s *AchievementService) enqueue(ctx context.Context, ids []string) error {
	pending, err := s.queue.Load(ctx)
	if err != nil {
		return err
	}
	now := s.clock.Now()
	for _, id := range ids {
		pending = append(pending, domain.Notification{AchievementID: id, UnlockedAt: now})
	}
	if len(pending) > domain.QueueLimit {
		pending = pending[len(pending)-domain.QueueLimit:]
	}
	return s.queue.Save(ctx, pending)
}

func (s *AchievementService) Pending(ctx context.Context) ([]domain.Notification, error) {
	return s.queue.Load(ctx)
}

func (s *AchievementService) Drain(ctx context.Context) error {
	return s.queue.Save(ctx, []domain.Notification{})
}

// Reset clears the ledger and the mailbox unconditionally. Full account
// reset only; the normal session flow never calls this.
func (s *AchievementService) Reset(ctx context.Context) error {
	if err := s.ledger.Save(ctx, map[string]time.Time{}); err != nil {
		return err
	}
	return s.queue.Save(ctx, []domain.Notification{})
}
