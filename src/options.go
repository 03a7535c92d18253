package colorpicker

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
)

const usage = `usage: colorpicker [options]

  Interface
    --gui                 Open a window (HTML front end)
    --tui                 Full-screen terminal interface
                          (default when standard input is a terminal)
    --listen[=PORT]       Start HTTP server to receive actions
                          (POST /) and report the state (GET /)
    --no-mouse            Disable mouse in the terminal interface

  Color
    --color=COLOR         Initial color (default: #FFFFFF)
                          [#RRGGBB|rgb(R,G,B)|cmyk(C,M,Y,K)|hls(H,L,S)|hsv(H,S,V)]
    --palette=NAME        Initial palette category (default: basic)
    --palette-file=FILE   TOML file with extra palette categories
    --warning-delay=SEC   Hide warnings after SEC seconds (default: 5, 0: never)

  History
    --history=FILE        History file of accepted colors
    --history-size=N      Maximum number of history entries (default: 100)

  Output
    --format=FMT          Output format of the accepted color
                          [hex|rgb|cmyk|hls|hsv|all] (default: hex)
    --convert=COLOR       Print COLOR in every model and exit

  Misc
    --log=FILE            Write log messages to FILE
    -v, --verbose         Log debug messages
    --profile-cpu=FILE    Write CPU profile to FILE (requires -tags=pprof)
    --profile-mem=FILE    Write memory profile to FILE (requires -tags=pprof)
    --version             Display version information and exit
    -h, --help            Display this help and exit

  Environment variables
    COLORPICKER_DEFAULT_OPTS  Default options
    COLORPICKER_API_KEY       X-API-Key header for HTTP server (--listen)

`

// Output formats
const (
	formatHex  = "hex"
	formatRGB  = "rgb"
	formatCMYK = "cmyk"
	formatHLS  = "hls"
	formatHSV  = "hsv"
	formatAll  = "all"
)

// Options stores the values of command-line options
type Options struct {
	GUI          bool
	TUI          bool
	Listen       int
	Mouse        bool
	Color        string
	Palette      string
	PaletteFile  string
	WarningDelay time.Duration
	HistoryPath  string
	HistoryMax   int
	Format       string
	Convert      string
	LogFile      string
	Verbose      bool
	Version      bool
	Help         bool
	CPUProfile   string
	MEMProfile   string
	BlockProfile string
	MutexProfile string
}

func defaultOptions() *Options {
	return &Options{
		Listen:       -1,
		Mouse:        true,
		Color:        "#FFFFFF",
		Palette:      "basic",
		WarningDelay: defaultWarningDelay,
		HistoryMax:   defaultHistoryMax,
		Format:       formatHex}
}

// Usage returns the help message
func Usage() string {
	return usage
}

func optString(arg string, prefixes ...string) (bool, string) {
	for _, prefix := range prefixes {
		if strings.HasPrefix(arg, prefix) {
			return true, arg[len(prefix):]
		}
	}
	return false, ""
}

func nextString(args []string, i *int, message string) (string, error) {
	if len(args) > *i+1 {
		*i++
	} else {
		return "", errors.New(message)
	}
	return args[*i], nil
}

func atoi(str string) (int, error) {
	num, err := strconv.Atoi(str)
	if err != nil {
		return 0, errors.New("not a valid integer: " + str)
	}
	return num, nil
}

func atof(str string) (float64, error) {
	num, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, errors.New("not a valid number: " + str)
	}
	return num, nil
}

func nextInt(args []string, i *int, message string) (int, error) {
	str, err := nextString(args, i, message)
	if err != nil {
		return 0, err
	}
	return atoi(str)
}

func optionalNumeric(args []string, i *int, defaultValue int) (int, error) {
	if len(args) > *i+1 {
		if strings.IndexAny(args[*i+1], "0123456789") == 0 {
			*i++
			return atoi(args[*i])
		}
	}
	return defaultValue, nil
}

func parsePort(port int) (int, error) {
	if port < 0 || port > 65535 {
		return 0, errors.Errorf("invalid port number: %d", port)
	}
	return port, nil
}

func parseWarningDelay(str string) (time.Duration, error) {
	seconds, err := atof(str)
	if err != nil {
		return 0, err
	}
	if seconds < 0 {
		return 0, errors.New("warning delay must be a non-negative number")
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

func parseFormat(str string) (string, error) {
	switch str {
	case formatHex, formatRGB, formatCMYK, formatHLS, formatHSV, formatAll:
		return str, nil
	}
	return "", errors.New("invalid format: " + str)
}

func parseOptions(opts *Options, allArgs []string) error {
	var err error
	for i := 0; i < len(allArgs); i++ {
		arg := allArgs[i]
		switch arg {
		case "-h", "--help":
			opts.Help = true
		case "--version":
			opts.Version = true
		case "-v", "--verbose":
			opts.Verbose = true
		case "--no-verbose":
			opts.Verbose = false
		case "--gui":
			opts.GUI = true
		case "--no-gui":
			opts.GUI = false
		case "--tui":
			opts.TUI = true
		case "--no-tui":
			opts.TUI = false
		case "--mouse":
			opts.Mouse = true
		case "--no-mouse":
			opts.Mouse = false
		case "--listen":
			var port int
			if port, err = optionalNumeric(allArgs, &i, 0); err == nil {
				opts.Listen, err = parsePort(port)
			}
		case "--no-listen":
			opts.Listen = -1
		case "--color":
			opts.Color, err = nextString(allArgs, &i, "color required")
		case "--palette":
			opts.Palette, err = nextString(allArgs, &i, "palette name required")
		case "--palette-file":
			opts.PaletteFile, err = nextString(allArgs, &i, "palette file required")
		case "--no-palette-file":
			opts.PaletteFile = ""
		case "--history":
			opts.HistoryPath, err = nextString(allArgs, &i, "history file path required")
		case "--no-history":
			opts.HistoryPath = ""
		case "--history-size":
			opts.HistoryMax, err = nextInt(allArgs, &i, "history max size required")
		case "--warning-delay":
			var str string
			if str, err = nextString(allArgs, &i, "warning delay required"); err == nil {
				opts.WarningDelay, err = parseWarningDelay(str)
			}
		case "--format":
			var str string
			if str, err = nextString(allArgs, &i, "format required"); err == nil {
				opts.Format, err = parseFormat(str)
			}
		case "--convert":
			opts.Convert, err = nextString(allArgs, &i, "color required")
		case "--log":
			opts.LogFile, err = nextString(allArgs, &i, "log file path required")
		case "--profile-cpu":
			opts.CPUProfile, err = nextString(allArgs, &i, "file path required: cpu")
		case "--profile-mem":
			opts.MEMProfile, err = nextString(allArgs, &i, "file path required: mem")
		case "--profile-block":
			opts.BlockProfile, err = nextString(allArgs, &i, "file path required: block")
		case "--profile-mutex":
			opts.MutexProfile, err = nextString(allArgs, &i, "file path required: mutex")
		default:
			if match, value := optString(arg, "--listen="); match {
				var port int
				if port, err = atoi(value); err == nil {
					opts.Listen, err = parsePort(port)
				}
			} else if match, value := optString(arg, "--color="); match {
				opts.Color = value
			} else if match, value := optString(arg, "--palette="); match {
				opts.Palette = value
			} else if match, value := optString(arg, "--palette-file="); match {
				opts.PaletteFile = value
			} else if match, value := optString(arg, "--history="); match {
				opts.HistoryPath = value
			} else if match, value := optString(arg, "--history-size="); match {
				opts.HistoryMax, err = atoi(value)
			} else if match, value := optString(arg, "--warning-delay="); match {
				opts.WarningDelay, err = parseWarningDelay(value)
			} else if match, value := optString(arg, "--format="); match {
				opts.Format, err = parseFormat(value)
			} else if match, value := optString(arg, "--convert="); match {
				opts.Convert = value
			} else if match, value := optString(arg, "--log="); match {
				opts.LogFile = value
			} else if match, value := optString(arg, "--profile-cpu="); match {
				opts.CPUProfile = value
			} else if match, value := optString(arg, "--profile-mem="); match {
				opts.MEMProfile = value
			} else if match, value := optString(arg, "--profile-block="); match {
				opts.BlockProfile = value
			} else if match, value := optString(arg, "--profile-mutex="); match {
				opts.MutexProfile = value
			} else {
				return errors.New("unknown option: " + arg)
			}
		}
		if err != nil {
			return err
		}
	}

	if opts.HistoryMax < 1 {
		return errors.New("history max must be a positive integer")
	}
	return nil
}

func postProcessOptions(opts *Options) error {
	if opts.GUI && opts.TUI {
		return errors.New("--gui and --tui are mutually exclusive")
	}
	if len(opts.Palette) == 0 {
		return errors.New("palette name required")
	}
	return nil
}

// ParseOptions parses the options in COLORPICKER_DEFAULT_OPTS followed by
// the given command-line arguments
func ParseOptions(useDefaults bool, args []string) (*Options, error) {
	opts := defaultOptions()

	if useDefaults {
		// Options from Env var
		words, err := shellwords.Parse(os.Getenv("COLORPICKER_DEFAULT_OPTS"))
		if err != nil {
			return nil, errors.Wrap(err, "invalid COLORPICKER_DEFAULT_OPTS")
		}
		if len(words) > 0 {
			if err := parseOptions(opts, words); err != nil {
				return nil, errors.Wrap(err, "invalid COLORPICKER_DEFAULT_OPTS")
			}
		}
	}

	// Options from command-line arguments
	if err := parseOptions(opts, args); err != nil {
		return nil, err
	}

	if err := postProcessOptions(opts); err != nil {
		return nil, err
	}
	return opts, nil
}
