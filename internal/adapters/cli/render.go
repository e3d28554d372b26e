// Package cli renders the widget view model for terminals.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"weatherwidget.app/internal/core/weather"
	"weatherwidget.app/internal/core/widget"
	"weatherwidget.app/pkg/errors"
	"weatherwidget.app/pkg/validation"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// WidgetRunner is the part of the widget a one-shot lookup drives
type WidgetRunner interface {
	Search(ctx context.Context, sessionID, city string) error
	Locate(ctx context.Context, sessionID string, request widget.LocateRequest) error
	ToggleUnit(ctx context.Context, sessionID string) error
	View(ctx context.Context, sessionID string) (*widget.ViewModel, error)
}

// LookupOptions selects what the lookup command fetches and prints
type LookupOptions struct {
	City   string   `validate:"max=200"`
	Lat    *float64 `validate:"omitempty,gte=-90,lte=90"`
	Lon    *float64 `validate:"omitempty,gte=-180,lte=180"`
	Unit   string   `validate:"unit"`
	Output string   `validate:"oneof=text json"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("unit", func(fl validator.FieldLevel) bool {
		return validation.IsValidUnit(fl.Field().String())
	})
	return v
}

// Validate checks the options; exactly one of city or a coordinate pair is required
func (o LookupOptions) Validate() error {
	if err := validate.Struct(o); err != nil {
		return errors.NewValidationError(fmt.Sprintf("invalid lookup options: %v", err))
	}
	if (o.Lat == nil) != (o.Lon == nil) {
		return errors.NewValidationError("--lat and --lon must be used together")
	}
	hasCity := validation.IsNotEmpty(o.City)
	if hasCity == (o.Lat != nil) {
		return errors.NewValidationError("provide either a city or --lat/--lon")
	}
	return nil
}

// Lookup runs one widget interaction on a throwaway session and prints the result
func Lookup(ctx context.Context, runner WidgetRunner, opts LookupOptions, out io.Writer) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	unit, err := weather.ParseUnit(opts.Unit)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	sessionID := uuid.NewString()
	if opts.Lat != nil {
		err = runner.Locate(ctx, sessionID, widget.LocateRequest{
			Coordinates: &weather.Coordinates{Lat: *opts.Lat, Lon: *opts.Lon},
		})
	} else {
		err = runner.Search(ctx, sessionID, opts.City)
	}
	if err != nil {
		return fmt.Errorf("lookup: %w", err)
	}

	// fetched snapshots are always Celsius
	if unit == weather.Fahrenheit {
		if err := runner.ToggleUnit(ctx, sessionID); err != nil {
			return fmt.Errorf("toggle unit: %w", err)
		}
	}

	view, err := runner.View(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("view: %w", err)
	}

	if opts.Output == OutputJSON {
		return RenderJSON(out, view)
	}
	return RenderText(out, view)
}

// RenderJSON writes the view model as indented JSON
func RenderJSON(out io.Writer, view *widget.ViewModel) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(view)
}

// RenderText writes the widget as plain text
func RenderText(out io.Writer, view *widget.ViewModel) error {
	var b strings.Builder

	for _, notice := range view.Notices {
		fmt.Fprintf(&b, "! %s\n", notice.Message)
	}

	if !view.HasData {
		b.WriteString("No weather data.\n")
		_, err := io.WriteString(out, b.String())
		return err
	}

	fmt.Fprintf(&b, "%s\n", view.Place)
	b.WriteString(strings.Repeat("=", 30) + "\n")
	fmt.Fprintf(&b, "%d °%s  %s\n", view.Temperature, view.Unit, iconName(view.Icon))
	fmt.Fprintf(&b, "%s: %d%%\n", view.Captions.Humidity, view.Humidity)
	fmt.Fprintf(&b, "%s: %g %s\n", view.Captions.WindSpeed, view.WindSpeed, view.WindSpeedUnit)

	if len(view.Forecast) > 0 {
		fmt.Fprintf(&b, "\n%s\n", view.ForecastHeading)
		for _, day := range view.Forecast {
			fmt.Fprintf(&b, "%-4s %4d%s  %s\n", day.Day, day.Temperature, day.Unit, iconName(day.Icon))
		}
	}

	_, err := io.WriteString(out, b.String())
	return err
}

func iconName(ref string) string {
	return strings.TrimSuffix(path.Base(ref), ".svg")
}
