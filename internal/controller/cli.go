package controller

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/Freeeeeet/schedule_cli/internal/app"
	"github.com/Freeeeeet/schedule_cli/internal/config"
	"github.com/Freeeeeet/schedule_cli/internal/controller/formatting"
	"github.com/Freeeeeet/schedule_cli/internal/export"
	"github.com/Freeeeeet/schedule_cli/internal/model"
	"github.com/Freeeeeet/schedule_cli/internal/render"
	"github.com/Freeeeeet/schedule_cli/internal/repository"
	"github.com/Freeeeeet/schedule_cli/internal/service"
)

// Коды выхода: конфликт расписания отличается от фатальных ошибок
const (
	exitConflict = 1
	exitFatal    = 2
)

const dateLayout = "2006-01-02"

// Controller связывает командную строку с сервисом календаря
type Controller struct {
	cfg    *config.Config
	logger *zap.Logger
}

func New(cfg *config.Config, logger *zap.Logger) *Controller {
	return &Controller{
		cfg:    cfg,
		logger: logger,
	}
}

// RootCommand собирает дерево команд CLI
func (c *Controller) RootCommand() *cli.Command {
	return &cli.Command{
		Name:  "schedule",
		Usage: "Личный календарь занятий с проверкой пересечений",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "file",
				Usage: "путь к файлу расписания (по умолчанию из SCHEDULE_FILE или schedules.json)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "Показать все занятия",
				Action: c.handleList,
			},
			{
				Name:      "add",
				Usage:     "Добавить занятие",
				ArgsUsage: "<subject> <start> <end>",
				Action:    c.handleAdd,
			},
			{
				Name:   "init",
				Usage:  "Создать пустой файл расписания",
				Action: c.handleInit,
			},
			{
				Name:  "week",
				Usage: "Нарисовать неделю занятий в PNG",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "date",
						Usage: "любой день нужной недели (ГГГГ-ММ-ДД, по умолчанию сегодня)",
					},
					&cli.StringFlag{
						Name:  "out",
						Value: "week.png",
						Usage: "путь к итоговому изображению",
					},
				},
				Action: c.handleWeek,
			},
			{
				Name:  "export",
				Usage: "Выгрузить занятия в iCalendar",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "out",
						Value: "schedules.ics",
						Usage: "путь к итоговому ICS-файлу",
					},
				},
				Action: c.handleExport,
			},
		},
	}
}

// storagePath определяет путь к хранилищу: флаг имеет приоритет над конфигом
func (c *Controller) storagePath(cmd *cli.Command) string {
	if path := cmd.String("file"); path != "" {
		return path
	}
	return c.cfg.ScheduleFile
}

func (c *Controller) repository(cmd *cli.Command) *repository.CalendarRepository {
	return repository.NewCalendarRepository(c.storagePath(cmd))
}

func (c *Controller) service(cmd *cli.Command) *service.CalendarService {
	return service.NewCalendarService(c.repository(cmd), c.logger)
}

// handleList обрабатывает команду list
func (c *Controller) handleList(ctx context.Context, cmd *cli.Command) error {
	schedules, err := c.service(cmd).ListSchedules(ctx)
	if err != nil {
		c.logger.Error("Failed to list schedules", zap.Error(err))
		return cli.Exit("❌ Ошибка: не удалось прочитать расписание", exitFatal)
	}

	fmt.Println("ID\tStart\tEnd\tSubject")
	for _, schedule := range schedules {
		fmt.Printf("%d\t%s\t%s\t%s\n", schedule.ID, schedule.Start, schedule.End, schedule.Subject)
	}

	return nil
}

// handleAdd обрабатывает команду add
func (c *Controller) handleAdd(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args()
	if args.Len() != 3 {
		return cli.Exit("❌ Использование: schedule add <subject> <start> <end>", exitFatal)
	}

	subject := args.Get(0)

	start, err := model.ParseDateTime(args.Get(1))
	if err != nil {
		return cli.Exit(fmt.Sprintf("❌ Ошибка: неверный формат начала занятия, ожидается %s", model.DateTimeLayout), exitFatal)
	}

	end, err := model.ParseDateTime(args.Get(2))
	if err != nil {
		return cli.Exit(fmt.Sprintf("❌ Ошибка: неверный формат конца занятия, ожидается %s", model.DateTimeLayout), exitFatal)
	}

	// Вырожденный интервал отсекаем до обращения к хранилищу
	if end.Before(start.Time) || end.Equal(start.Time) {
		return cli.Exit("❌ Ошибка: конец занятия должен быть позже начала", exitFatal)
	}

	schedule, err := c.service(cmd).AddSchedule(ctx, subject, start, end)
	if err != nil {
		if model.IsConflict(err) {
			return cli.Exit("⛔ Ошибка: занятие пересекается с существующим", exitConflict)
		}
		c.logger.Error("Failed to add schedule", zap.Error(err))
		return cli.Exit("❌ Ошибка: не удалось сохранить расписание", exitFatal)
	}

	fmt.Printf("✅ Занятие добавлено: #%d %s %s\n",
		schedule.ID,
		formatting.FormatDate(schedule.Start.Time),
		formatting.FormatTimeRange(schedule.Start.Time, schedule.End.Time),
	)

	return nil
}

// handleInit обрабатывает команду init
func (c *Controller) handleInit(ctx context.Context, cmd *cli.Command) error {
	bootstrap := app.NewBootstrap(c.repository(cmd), c.logger)
	if err := bootstrap.Run(); err != nil {
		c.logger.Error("Failed to create schedule file", zap.Error(err))
		return cli.Exit("❌ Ошибка: не удалось создать файл расписания", exitFatal)
	}

	fmt.Printf("✅ Файл расписания создан: %s\n", c.repository(cmd).Path())
	return nil
}

// handleWeek обрабатывает команду week
func (c *Controller) handleWeek(ctx context.Context, cmd *cli.Command) error {
	date := time.Now()
	if raw := cmd.String("date"); raw != "" {
		parsed, err := time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			return cli.Exit(fmt.Sprintf("❌ Ошибка: неверный формат даты, ожидается %s", dateLayout), exitFatal)
		}
		date = parsed
	}

	schedules, err := c.service(cmd).ListSchedules(ctx)
	if err != nil {
		c.logger.Error("Failed to list schedules", zap.Error(err))
		return cli.Exit("❌ Ошибка: не удалось прочитать расписание", exitFatal)
	}

	image, err := render.RenderWeek(schedules, date)
	if err != nil {
		c.logger.Error("Failed to render week image", zap.Error(err))
		return cli.Exit("❌ Ошибка: не удалось нарисовать неделю", exitFatal)
	}

	out := cmd.String("out")
	if err := os.WriteFile(out, image, 0o644); err != nil {
		c.logger.Error("Failed to write week image", zap.Error(err), zap.String("path", out))
		return cli.Exit("❌ Ошибка: не удалось записать изображение", exitFatal)
	}

	fmt.Printf("✅ Неделя сохранена: %s\n", out)
	return nil
}

// handleExport обрабатывает команду export
func (c *Controller) handleExport(ctx context.Context, cmd *cli.Command) error {
	schedules, err := c.service(cmd).ListSchedules(ctx)
	if err != nil {
		c.logger.Error("Failed to list schedules", zap.Error(err))
		return cli.Exit("❌ Ошибка: не удалось прочитать расписание", exitFatal)
	}

	out := cmd.String("out")
	if err := os.WriteFile(out, []byte(export.ICS(schedules)), 0o644); err != nil {
		c.logger.Error("Failed to write ICS file", zap.Error(err), zap.String("path", out))
		return cli.Exit("❌ Ошибка: не удалось записать ICS-файл", exitFatal)
	}

	fmt.Printf("✅ Календарь выгружен: %s\n", out)
	return nil
}
