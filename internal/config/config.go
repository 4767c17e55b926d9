// Package config provides configuration loading and management for plangen.
package config

import (
	"errors"
	"fmt"
)

// ErrNoPhases is returned when the configuration declares no study phases.
var ErrNoPhases = errors.New("config declares no phases")

// Generator modes.
const (
	ModeTemplate = "template"
	ModeAI       = "ai"
)

// Config is the root configuration.
type Config struct {
	Paths            Paths               `json:"paths"             mapstructure:"paths"`
	Phases           []Phase             `json:"phases"            mapstructure:"phases"`
	WeekdayNames     []string            `json:"weekday_names"     mapstructure:"weekday_names"`
	ErrorIntervals   Intervals           `json:"error_intervals"   mapstructure:"error_intervals"`
	SubjectTemplates map[string]string   `json:"subject_templates" mapstructure:"subject_templates"`
	// Milestones is keyed by year-month ("2026-01"). Dots are not
	// allowed in keys: viper would split them into nested maps.
	Milestones map[string][]string `json:"milestones"        mapstructure:"milestones"`
	CarryLimit       int                 `json:"carry_limit"       mapstructure:"carry_limit"`
	Generator        Generator           `json:"generator"         mapstructure:"generator"`
	AI               AI                  `json:"ai"                mapstructure:"ai"`
}

// Paths locates vault directories relative to the vault root.
type Paths struct {
	PlanDir   string `json:"plan_dir"   mapstructure:"plan_dir"`
	ErrorRoot string `json:"error_root" mapstructure:"error_root"`
}

// Phase is a configured study phase with its resource allocation.
type Phase struct {
	ID         int                `json:"id"         mapstructure:"id"`
	Name       string             `json:"name"       mapstructure:"name"`
	Start      string             `json:"start"      mapstructure:"start"`
	End        string             `json:"end"        mapstructure:"end"`
	Allocation map[string]float64 `json:"allocation" mapstructure:"allocation"`
}

// Intervals names the elapsed-day offsets at which an error item is due,
// per severity class.
type Intervals struct {
	High []int `json:"high" mapstructure:"high"`
	Low  []int `json:"low"  mapstructure:"low"`
}

// Generator selects the plan assembly strategy.
type Generator struct {
	Mode string `json:"mode" mapstructure:"mode"`
}

// AI configures the external text-generation provider.
type AI struct {
	Provider       string `json:"provider,omitempty"        mapstructure:"provider"`
	Model          string `json:"model,omitempty"           mapstructure:"model"`
	BaseURL        string `json:"base_url,omitempty"        mapstructure:"base_url"`
	APIKey         string `json:"api_key,omitempty"         mapstructure:"api_key"`
	APIKeyEnv      string `json:"api_key_env,omitempty"     mapstructure:"api_key_env"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" mapstructure:"timeout_seconds"`
}

// Default values applied when the config file leaves a field empty.
var (
	defaultWeekdayNames   = []string{"周一", "周二", "周三", "周四", "周五", "周六", "周日"}
	defaultHighIntervals  = []int{1, 3, 7, 15, 30}
	defaultLowIntervals   = []int{3, 7, 15, 30}
	defaultPlanDir        = "考研计划"
	defaultErrorRoot      = "考研数学/错题"
	defaultCarryLimit     = 5
	defaultGeneratorMode  = ModeTemplate
	defaultProviderOpenAI = "openai"
)

// ApplyDefaults fills unset fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.Paths.PlanDir == "" {
		c.Paths.PlanDir = defaultPlanDir
	}
	if c.Paths.ErrorRoot == "" {
		c.Paths.ErrorRoot = defaultErrorRoot
	}
	if len(c.WeekdayNames) == 0 {
		c.WeekdayNames = defaultWeekdayNames
	}
	if len(c.ErrorIntervals.High) == 0 {
		c.ErrorIntervals.High = defaultHighIntervals
	}
	if len(c.ErrorIntervals.Low) == 0 {
		c.ErrorIntervals.Low = defaultLowIntervals
	}
	if c.CarryLimit <= 0 {
		c.CarryLimit = defaultCarryLimit
	}
	if c.Generator.Mode == "" {
		c.Generator.Mode = defaultGeneratorMode
	}
	if c.AI.Provider == "" {
		c.AI.Provider = defaultProviderOpenAI
	}
}

// Validate checks invariants the schema cannot express.
func (c *Config) Validate() error {
	if len(c.Phases) == 0 {
		return ErrNoPhases
	}
	if len(c.WeekdayNames) != 7 {
		return fmt.Errorf("weekday_names must hold 7 labels, got %d", len(c.WeekdayNames))
	}
	if c.Generator.Mode != ModeTemplate && c.Generator.Mode != ModeAI {
		return fmt.Errorf("unsupported generator mode %q (allowed: %s, %s)", c.Generator.Mode, ModeTemplate, ModeAI)
	}
	return nil
}
