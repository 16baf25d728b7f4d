// golangcilintkindgen package provides a plugin for golangci-lint to integrate
// the Kindgen analyzer. To build a custom golangci-lint binary with this
// plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-kindgen binary that you can use to lint
// your Go code with the Kindgen analyzer. The plugin accepts the derive
// setting of kindgen.yaml:
//
//	linters:
//	  settings:
//	    custom:
//	      kindgen:
//	        type: module
//	        settings:
//	          derive: [values, json]
package golangcilintkindgen

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/sublee/kindgen/pkg/kindgenanalysis"
)

func init() {
	register.Plugin("kindgen", New)
}

// Settings are the plugin settings.
type Settings struct {
	Derive []string `json:"derive"`
}

func New(settings any) (register.LinterPlugin, error) {
	s, err := register.DecodeSettings[Settings](settings)
	if err != nil {
		return nil, err
	}
	return KindgenLinter{settings: s}, nil
}

type KindgenLinter struct {
	settings Settings
}

func (l KindgenLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	analyzer, err := kindgenanalysis.NewAnalyzer(l.settings.Derive)
	if err != nil {
		return nil, err
	}
	return []*analysis.Analyzer{analyzer}, nil
}

func (KindgenLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
