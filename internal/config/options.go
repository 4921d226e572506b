package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gorewood/moodmark/internal/journal"
)

// Keys shared by flags, config.yaml and MOODMARK_* environment variables.
// Environment names replace '-' with '_', e.g. MOODMARK_CSV_DELIMITER.
const (
	KeyDelimiter     = "csv-delimiter"
	KeyHeader        = "header"
	KeyTags          = "tags"
	KeyTagActivities = "tag-activities"
	KeyPrefix        = "prefix"
	KeySuffix        = "suffix"
	KeyColour        = "colour"
	KeyForce         = "force"
	KeyMoods         = "moods"
	KeyVerbose       = "verbose"
	KeyQuiet         = "quiet"
	KeyColorOutput   = "color-output"
)

// Options is the resolved configuration of one run.
type Options struct {
	Delimiter     string
	HeaderLevel   int
	Tags          []string
	TagActivities bool
	Prefix        string
	Suffix        string
	Colour        bool
	Force         ForceMode
	// Moods is the path of a custom mood taxonomy file; empty means the standard set.
	Moods       string
	Verbose     bool
	Quiet       bool
	ColorOutput string
	// File is the config file that was read, if any.
	File string
}

// Defaults returns the options used when nothing else is configured.
func Defaults() Options {
	defaults := journal.DefaultConfig()
	return Options{
		Delimiter:     defaults.Entry.Delimiter,
		HeaderLevel:   defaults.Entry.HeaderLevel,
		Tags:          defaults.FrontMatterTags,
		TagActivities: defaults.Entry.TagActivities,
		ColorOutput:   "auto",
	}
}

// RegisterFormatFlags adds the note formatting flags to flags.
func RegisterFormatFlags(flags *pflag.FlagSet) {
	d := Defaults()
	flags.String(KeyDelimiter, d.Delimiter, "Separator between activities in the CSV")
	flags.Int(KeyHeader, d.HeaderLevel, "Heading level of each entry")
	flags.StringSlice(KeyTags, d.Tags, "Front-matter tags of every note (repeatable)")
	flags.Bool(KeyTagActivities, d.TagActivities, "Render activities as #tags")
	flags.String(KeyPrefix, d.Prefix, "Text placed before each entry heading")
	flags.String(KeySuffix, d.Suffix, "Text placed after each entry heading")
	flags.Bool(KeyColour, d.Colour, "Prefix moods with a coloured marker for their group")
}

// RegisterForceFlag adds --force to flags.
func RegisterForceFlag(flags *pflag.FlagSet) {
	flags.String(KeyForce, "", "Resolve changed notes without asking: accept or reject")
}

// RegisterGlobalFlags adds the flags shared by every command.
func RegisterGlobalFlags(flags *pflag.FlagSet) {
	d := Defaults()
	flags.String(KeyMoods, "", "Custom mood taxonomy file (YAML or JSON)")
	flags.BoolP(KeyVerbose, "v", false, "Log every note and diagnostic")
	flags.BoolP(KeyQuiet, "q", false, "Log errors only")
	flags.String(KeyColorOutput, d.ColorOutput, "Colour output: auto, always or never")
}

// Load resolves options from defaults, config.yaml in Dir() or the working
// directory, MOODMARK_* environment variables and flags, in increasing
// precedence. Only flags that were set override the other sources.
// A missing config file is not an error.
func Load(flags *pflag.FlagSet) (Options, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir := Dir(); dir != "" {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("MOODMARK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Options{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Options{}, fmt.Errorf("binding flags: %w", err)
		}
	}

	force, err := ParseForceMode(v.GetString(KeyForce))
	if err != nil {
		return Options{}, err
	}

	opts := Options{
		Delimiter:     v.GetString(KeyDelimiter),
		HeaderLevel:   v.GetInt(KeyHeader),
		Tags:          v.GetStringSlice(KeyTags),
		TagActivities: v.GetBool(KeyTagActivities),
		Prefix:        v.GetString(KeyPrefix),
		Suffix:        v.GetString(KeySuffix),
		Colour:        v.GetBool(KeyColour),
		Force:         force,
		Moods:         v.GetString(KeyMoods),
		Verbose:       v.GetBool(KeyVerbose),
		Quiet:         v.GetBool(KeyQuiet),
		ColorOutput:   v.GetString(KeyColorOutput),
		File:          v.ConfigFileUsed(),
	}
	return opts, opts.Validate()
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault(KeyDelimiter, d.Delimiter)
	v.SetDefault(KeyHeader, d.HeaderLevel)
	v.SetDefault(KeyTags, d.Tags)
	v.SetDefault(KeyTagActivities, d.TagActivities)
	v.SetDefault(KeyPrefix, d.Prefix)
	v.SetDefault(KeySuffix, d.Suffix)
	v.SetDefault(KeyColour, d.Colour)
	v.SetDefault(KeyForce, "")
	v.SetDefault(KeyMoods, "")
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyQuiet, false)
	v.SetDefault(KeyColorOutput, d.ColorOutput)
}

// Validate reports the first invalid option.
func (o Options) Validate() error {
	if o.Delimiter == "" {
		return errors.New("csv delimiter must not be empty")
	}
	if o.HeaderLevel < 1 {
		return fmt.Errorf("header level must be at least 1, got %d", o.HeaderLevel)
	}
	if _, err := ParseForceMode(string(o.Force)); err != nil {
		return err
	}
	switch o.ColorOutput {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color output %q: use auto, always or never", o.ColorOutput)
	}
	if o.Verbose && o.Quiet {
		return errors.New("verbose and quiet cannot be combined")
	}
	return nil
}

// Journal returns the journal configuration these options describe.
func (o Options) Journal() journal.Config {
	return journal.Config{
		Entry: journal.EntryConfig{
			Delimiter:     o.Delimiter,
			HeaderLevel:   o.HeaderLevel,
			TagActivities: o.TagActivities,
			Prefix:        o.Prefix,
			Suffix:        o.Suffix,
			Colour:        o.Colour,
		},
		FrontMatterTags: o.Tags,
	}
}
