package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	achievementinadapter "pento/internal/modules/achievement/adapter/in"
	achievementoutadapter "pento/internal/modules/achievement/adapter/out"
	achievementservice "pento/internal/modules/achievement/service"
	achievementusecase "pento/internal/modules/achievement/usecase"
	billinginadapter "pento/internal/modules/billing/adapter/in"
	billingoutadapter "pento/internal/modules/billing/adapter/out"
	billingservice "pento/internal/modules/billing/service"
	billingusecase "pento/internal/modules/billing/usecase"
	cataloginadapter "pento/internal/modules/catalog/adapter/in"
	catalogoutadapter "pento/internal/modules/catalog/adapter/out"
	catalogservice "pento/internal/modules/catalog/service"
	catalogusecase "pento/internal/modules/catalog/usecase"
	journalinadapter "pento/internal/modules/journal/adapter/in"
	journaloutadapter "pento/internal/modules/journal/adapter/out"
	journalservice "pento/internal/modules/journal/service"
	journalusecase "pento/internal/modules/journal/usecase"
	"pento/internal/platform/clock"
	"pento/internal/platform/config"
	"pento/internal/platform/id"
	"pento/internal/platform/tx"
	uiapp "pento/internal/ui/app"
)

type App struct {
	CatalogCLI     cataloginadapter.CLIHandler
	JournalCLI     journalinadapter.CLIHandler
	AchievementCLI achievementinadapter.CLIHandler
	BillingCLI     billinginadapter.CLIHandler

	Logger *zap.Logger
}

func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}

	catalogUC := catalogusecase.NewInteractor(catalogservice.NewCatalogService(catalogoutadapter.NewEmbeddedStore()))

	achievementUC := achievementusecase.NewInteractor(
		achievementservice.NewAchievementService(
			clk,
			achievementoutadapter.NewFileLedgerStore(cfg.StatePath, logger),
			achievementoutadapter.NewFileQueueStore(cfg.StatePath, logger),
		),
		catalogUC,
	)

	billingUC := billingusecase.NewInteractor(billingservice.NewBillingService(
		billingoutadapter.NewFileEntitlementStore(cfg.StatePath, logger),
		billingoutadapter.NewFileManifestStore(cfg.StatePath, logger),
		billingoutadapter.NewGRPCHost(),
	))

	projector, err := journaloutadapter.NewSQLiteHistoryProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new history projector: %w", err)
	}
	journalUC := journalusecase.NewInteractor(
		journalservice.NewJournalService(clk, ids, journaloutadapter.NewFileStatsStore(cfg.StatePath, logger)),
		journaloutadapter.NewFileDraftStore(cfg.StatePath, logger),
		journaloutadapter.NewFileHistoryStore(cfg.StatePath, logger),
		journaloutadapter.NewVaultNoteStore(cfg.VaultPath),
		projector,
		catalogUC,
		achievementUC,
		billingUC,
		tx.NoopManager{},
		logger,
	)

	return &App{
		CatalogCLI:     cataloginadapter.NewCLIHandler(catalogUC),
		JournalCLI:     journalinadapter.NewCLIHandler(journalUC),
		AchievementCLI: achievementinadapter.NewCLIHandler(achievementUC),
		BillingCLI:     billinginadapter.NewCLIHandler(billingUC),
		Logger:         logger,
	}, nil
}

func RunTUI(vaultPath string, app *App) error {
	model := uiapp.NewModel(vaultPath, app.CatalogCLI, app.JournalCLI, app.AchievementCLI, app.BillingCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
