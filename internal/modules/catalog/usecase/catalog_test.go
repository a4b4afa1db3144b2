package usecase_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	catalogout "pento/internal/modules/catalog/adapter/out"
	catalogin "pento/internal/modules/catalog/port/in"
	"pento/internal/modules/catalog/service"
	"pento/internal/modules/catalog/usecase"
	apperrors "pento/internal/platform/errors"
)

func newUsecase() catalogin.Usecase {
	return usecase.NewInteractor(service.NewCatalogService(catalogout.NewEmbeddedStore()))
}

func TestRandomPromptDrawsFromSenseiList(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	sensei, err := uc.GetSensei(context.Background(), "kaze")
	if err != nil {
		t.Fatalf("get sensei: %v", err)
	}
	if sensei.PromptCount != 20 {
		t.Fatalf("expected 20 prompts, got %d", sensei.PromptCount)
	}
	for i := 0; i < 25; i++ {
		prompt, err := uc.RandomPrompt(context.Background(), "kaze", "sprint")
		if err != nil {
			t.Fatalf("random prompt: %v", err)
		}
		if prompt.Chaos || prompt.PromptID == "" || prompt.Text == "" {
			t.Fatalf("expected catalog prompt, got %+v", prompt)
		}
		if prompt.PromptID[0] != 'k' {
			t.Fatalf("prompt %s does not belong to kaze", prompt.PromptID)
		}
	}
}

func TestRandomPromptGonzoGeneratesChaosAndRejectsOtherSenseis(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	if _, err := uc.RandomPrompt(context.Background(), "kaze", "gonzo"); !errors.Is(err, apperrors.ErrSenseiRestricted) {
		t.Fatalf("expected sensei restriction error, got %v", err)
	}
	shape := regexp.MustCompile(`^[^.]+\. [^.]+\. [^.]+\.$`)
	prompt, err := uc.RandomPrompt(context.Background(), "ryu", "gonzo")
	if err != nil {
		t.Fatalf("gonzo prompt: %v", err)
	}
	if !prompt.Chaos {
		t.Fatalf("gonzo prompt must be chaos")
	}
	if !shape.MatchString(prompt.Text) {
		t.Fatalf("chaos prompt %q does not match setting/constraint/mood shape", prompt.Text)
	}
}

func TestListModesFiltersBySensei(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	all, err := uc.ListModes(context.Background(), "")
	if err != nil {
		t.Fatalf("list modes: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 modes, got %d", len(all))
	}
	forKaze, err := uc.ListModes(context.Background(), "kaze")
	if err != nil {
		t.Fatalf("list modes for kaze: %v", err)
	}
	if len(forKaze) != 3 {
		t.Fatalf("kaze should see 3 modes, got %d", len(forKaze))
	}
	forRyu, err := uc.ListModes(context.Background(), "ryu")
	if err != nil {
		t.Fatalf("list modes for ryu: %v", err)
	}
	if len(forRyu) != 4 {
		t.Fatalf("ryu should see all 4 modes, got %d", len(forRyu))
	}
}

func TestGetSenseiUnknownIDReturnsNotFound(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	if _, err := uc.GetSensei(context.Background(), "tsuki"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
