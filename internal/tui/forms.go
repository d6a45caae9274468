package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/OxyzGiaHuy/ExpenseTracker/internal/cli"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/config"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/ledger"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/model"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/store"
	"github.com/OxyzGiaHuy/ExpenseTracker/internal/tui/theme"
)

// categoryOptions lists the fixed categories with their glyphs, in order.
func categoryOptions() []huh.Option[model.Category] {
	opts := make([]huh.Option[model.Category], len(model.Categories))
	for i, c := range model.Categories {
		opts[i] = huh.NewOption(theme.Category(c).Glyph+" "+string(c), c)
	}
	return opts
}

// validateAmount accepts a blank amount so an incomplete draft can be
// submitted and ignored; anything typed must parse.
func validateAmount(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := ledger.ParseAmount(s); err != nil {
		if errors.Is(err, ledger.ErrInvalidAmount) {
			return errors.New("số tiền không hợp lệ")
		}
		return err
	}
	return nil
}

// NewAddForm builds the add-expense form bound to d. Values typed into
// the form are written straight into d.
func NewAddForm(d *model.Draft) *huh.Form {
	if d.Category == "" {
		d.Category = model.DefaultCategory
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Tên khoản chi").
				Placeholder("Cà phê").
				CharLimit(120).
				Value(&d.Name),
			huh.NewInput().
				Title("Số tiền (₫)").
				Placeholder("50000").
				Validate(validateAmount).
				Value(&d.Amount),
			huh.NewSelect[model.Category]().
				Title("Danh mục").
				Options(categoryOptions()...).
				Value(&d.Category),
		),
	).WithShowHelp(false)
}

// newDeleteConfirm asks whether e should be removed. The answer lands
// in approved.
func newDeleteConfirm(e model.Expense, approved *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Xóa %q?", e.Name)).
				Description(fmt.Sprintf("%s · %s · %s", e.Category, cli.FormatVND(e.Amount), cli.FormatDay(e.Date.Local()))).
				Affirmative("Xóa").
				Negative("Hủy").
				Value(approved),
		),
	).WithShowHelp(false)
}

// SetupValues holds the answers of the setup wizard.
type SetupValues struct {
	DBPath         string
	Theme          string
	ShowShareChart bool
}

// SetupValuesFrom seeds the wizard with cfg.
func SetupValuesFrom(cfg config.Config) SetupValues {
	return SetupValues{
		DBPath:         cfg.General.DBPath,
		Theme:          cfg.Appearance.Theme,
		ShowShareChart: cfg.Display.ShowShareChart,
	}
}

// Apply copies the answers into cfg.
func (v SetupValues) Apply(cfg *config.Config) {
	cfg.General.DBPath = strings.TrimSpace(v.DBPath)
	cfg.Appearance.Theme = v.Theme
	cfg.Display.ShowShareChart = v.ShowShareChart
}

// NewSetupForm builds the first-run wizard bound to v.
func NewSetupForm(v *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Chào mừng đến với chitieu").
				Description("Vài thiết lập nhỏ trước khi bắt đầu.\nChạy `chitieu setup` bất cứ lúc nào để đổi lại."),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Tệp dữ liệu").
				Description("Để trống để dùng vị trí mặc định").
				Placeholder(store.DefaultPath()).
				Value(&v.DBPath),
			huh.NewSelect[string]().
				Title("Giao diện màu").
				Options(themeOpts...).
				Value(&v.Theme),
			huh.NewConfirm().
				Title("Hiện biểu đồ tỉ lệ theo danh mục?").
				Affirmative("Có").
				Negative("Không").
				Value(&v.ShowShareChart),
		),
	).WithShowHelp(false)
}
