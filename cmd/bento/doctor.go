package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	bento "github.com/alnah/go-bento"
	"github.com/alnah/go-bento/internal/config"
)

// minInotifyWatches is the max_user_watches value below which watch mode
// on a large tree is likely to fail.
const minInotifyWatches = 8192

// inotifyWatchesPath is read on Linux to report the watch limit.
var inotifyWatchesPath = "/proc/sys/fs/inotify/max_user_watches"

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	config string
	json   bool
}

func newDoctorFlagSet(f *doctorFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path to check")
	fs.BoolVar(&f.json, "json", false, "output as JSON")
	return fs
}

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Assets   assetInfo  `json:"assets"`
	Config   configInfo `json:"config"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// assetInfo holds template and stylesheet checks.
type assetInfo struct {
	Embedded    bool   `json:"embedded"`
	BasePath    string `json:"base_path,omitempty"`
	TemplateSet string `json:"template_set"`
	Style       string `json:"style"`
	Usable      bool   `json:"usable"`
}

// configInfo holds config file checks.
type configInfo struct {
	Name  string `json:"name,omitempty"`
	Valid bool   `json:"valid"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable   bool `json:"temp_writable"`
	InotifyWatches int  `json:"inotify_watches,omitempty"`
	Workers        int  `json:"workers"`
	EffectiveCPUs  int  `json:"gomaxprocs"`
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bento doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that templates and styles load, the config is valid, and the")
	fmt.Fprintln(w, "environment supports watch mode.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path to check")
	fmt.Fprintln(w, "      --json                Output as JSON")
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found, 2 = bad flags.
func runDoctorCmd(args []string, env *Environment) int {
	f := &doctorFlags{}
	if _, err := parse(newDoctorFlagSet(f), args, env.Stderr, printDoctorUsage); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsage
	}

	result := runDoctor(f.config)

	if f.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(configName string) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
	}

	envCfg := loadEnvConfig()
	cfg := checkConfig(result, configName, envCfg)
	checkAssets(result, cfg)
	checkEnvironment(result)
	checkSystem(result, envCfg)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkConfig loads the named config, if any, and returns the effective config.
func checkConfig(result *doctorResult, name string, envCfg *envConfig) *config.Config {
	if name == "" {
		name = envCfg.ConfigPath
	}
	result.Config.Name = name

	cfg, err := loadConfig(name, envCfg)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		cfg = config.DefaultConfig()
	} else {
		result.Config.Valid = true
	}
	applyEnvConfig(envCfg, cfg)
	return cfg
}

// checkAssets builds a renderer from the effective config, which loads
// and parses the template set and the module style.
func checkAssets(result *doctorResult, cfg *config.Config) {
	result.Assets.BasePath = cfg.Assets.BasePath
	result.Assets.Embedded = cfg.Assets.BasePath == ""
	result.Assets.TemplateSet = valueOr(cfg.Assets.TemplateSet, bento.DefaultTemplateSet)
	result.Assets.Style = valueOr(cfg.Assets.Style, bento.DefaultStyle)

	if _, err := bento.NewRenderer(); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("embedded assets: %v", err))
		return
	}
	if _, err := newRenderer(cfg); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("configured assets: %v", err))
		return
	}
	result.Assets.Usable = true
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult) {
	result.Env.Container, result.Env.ContainerHint = isContainer()

	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}

	if result.Env.Container || result.Env.CI {
		result.Warnings = append(result.Warnings,
			"Container/CI detected: file events may not arrive through bind mounts. Prefer 'bento render' over 'bento watch'")
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer() (bool, string) {
	if os.Getenv("BENTO_CONTAINER") == "1" {
		return true, "BENTO_CONTAINER=1"
	}
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true, "/.dockerenv"
	}
	if v := os.Getenv("container"); v != "" {
		return true, "container=" + v
	}
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem verifies system requirements.
func checkSystem(result *doctorResult, envCfg *envConfig) {
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "bento-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
	} else {
		_ = os.Remove(testFile)
		result.System.TempWritable = true
	}

	result.System.EffectiveCPUs = runtime.GOMAXPROCS(0)
	result.System.Workers = bento.ResolveWorkers(envCfg.Workers)

	if runtime.GOOS != "linux" {
		return
	}
	if n, ok := readInotifyWatches(); ok {
		result.System.InotifyWatches = n
		if n < minInotifyWatches {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("fs.inotify.max_user_watches is %d; watch mode may miss directories in large trees", n))
		}
	}
}

func readInotifyWatches() (int, bool) {
	data, err := os.ReadFile(inotifyWatchesPath)
	if err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, false
	}
	return n, true
}

func valueOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "bento doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Assets")
	if r.Assets.Embedded {
		fmt.Fprintln(w, "  [OK] Source: embedded")
	} else {
		fmt.Fprintf(w, "  [OK] Source: %s (embedded fallback)\n", r.Assets.BasePath)
	}
	status := "[OK]"
	if !r.Assets.Usable {
		status = "[ERROR]"
	}
	fmt.Fprintf(w, "  %s Template set: %s\n", status, r.Assets.TemplateSet)
	fmt.Fprintf(w, "  %s Style: %s\n", status, r.Assets.Style)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Config")
	switch {
	case r.Config.Name == "":
		fmt.Fprintln(w, "  [OK] Defaults (no config given)")
	case r.Config.Valid:
		fmt.Fprintf(w, "  [OK] %s\n", r.Config.Name)
	default:
		fmt.Fprintf(w, "  [ERROR] %s\n", r.Config.Name)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintf(w, "  [OK] Workers: %d (GOMAXPROCS %d)\n", r.System.Workers, r.System.EffectiveCPUs)
	if r.System.InotifyWatches > 0 {
		fmt.Fprintf(w, "  [OK] inotify watches: %d\n", r.System.InotifyWatches)
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to render")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
