package component

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"slices"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/review-tui/internal/ui/styles"
)

var (
	errAddressInvalid = errors.New("invalid address")
	errInvalidURL     = errors.New("invalid URL")
	errInvalidNumber  = errors.New("invalid number")
	errConfigValue    = errors.New("failed to validate config")
)

type InputValidator interface {
	Validate(value string) error
}

func NewValidatingTextInputModel(label string, value string, placeholder string, validators ...InputValidator) *ValidatingTextInputModel {
	input := NewTextInputModel(value, placeholder)

	if len(validators) > 0 {
		input.Validate = func(s string) error {
			for _, validator := range validators {
				if err := validator.Validate(s); err != nil {
					return err
				}
			}

			return nil
		}
		input.Err = input.Validate(value)
	}

	return &ValidatingTextInputModel{Input: input, Label: label}
}

type ValidatingTextInputModel struct {
	Label string
	Input textinput.Model
}

func (m *ValidatingTextInputModel) Init() tea.Cmd {
	return nil
}

func (m *ValidatingTextInputModel) Update(msg tea.Msg) (*ValidatingTextInputModel, tea.Cmd) {
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)

	return m, cmd
}

func (m *ValidatingTextInputModel) View() string {
	var errRow string
	if m.Input.Err != nil {
		errRow = lipgloss.NewStyle().Foreground(styles.Red).Render("Validation Error: " + m.Input.Err.Error())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.HelpStyle.Render(m.Label+": "),
		lipgloss.JoinVertical(lipgloss.Top, m.Input.View(), errRow))
}

func (m *ValidatingTextInputModel) Focus() tea.Cmd {
	m.Input.PromptStyle = styles.FocusedStyle
	m.Input.TextStyle = styles.FocusedStyle

	return m.Input.Focus()
}

func (m *ValidatingTextInputModel) Blur() {
	m.Input.PromptStyle = styles.NoStyle
	m.Input.TextStyle = styles.NoStyle
	m.Input.Blur()
}

// URLValidator accepts absolute http(s) urls.
type URLValidator struct {
	EmptyOk bool
}

func (v URLValidator) Validate(value string) error {
	if value == "" {
		if v.EmptyOk {
			return nil
		}

		return errInvalidURL
	}

	parsed, errParse := url.Parse(value)
	if errParse != nil {
		return errors.Join(errParse, errInvalidURL)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https", errInvalidURL)
	}

	if parsed.Host == "" {
		return fmt.Errorf("%w: missing host", errInvalidURL)
	}

	return nil
}

// IntValidator accepts whole numbers, optionally restricted to a set of allowed values.
type IntValidator struct {
	Min     int
	Allowed []int
}

func (v IntValidator) Validate(value string) error {
	number, errParse := strconv.Atoi(value)
	if errParse != nil {
		return errors.Join(errParse, errInvalidNumber)
	}

	if number < v.Min {
		return fmt.Errorf("%w: must be at least %d", errInvalidNumber, v.Min)
	}

	if len(v.Allowed) > 0 && !slices.Contains(v.Allowed, number) {
		return fmt.Errorf("%w: must be one of %v", errInvalidNumber, v.Allowed)
	}

	return nil
}

// AddressValidator accepts host:port listen addresses.
type AddressValidator struct {
	EmptyOk bool
}

func (v AddressValidator) Validate(value string) error {
	if value == "" {
		if v.EmptyOk {
			return nil
		}

		return fmt.Errorf("%w: Cannot be empty", errAddressInvalid)
	}

	_, port, err := net.SplitHostPort(value)
	if err != nil {
		return fmt.Errorf("%w: Invalid address", errors.Join(err, errConfigValue))
	}

	portValue, errParse := strconv.ParseUint(port, 10, 16)
	if errParse != nil {
		return errors.Join(errParse, errAddressInvalid)
	}

	if portValue == 0 {
		return fmt.Errorf("%w: port cannot be 0", errAddressInvalid)
	}

	return nil
}
