package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/quallab/rustqual/pkg/analyzer"
)

// SARIF version used by this writer.
const sarifVersion = "2.1.0"

// SARIF schema URI.
const sarifSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"

// SARIFOutput represents the root SARIF document.
type SARIFOutput struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SARIFRun `json:"runs"`
}

// SARIFRun represents a single analysis run.
type SARIFRun struct {
	Tool    SARIFTool     `json:"tool"`
	Results []SARIFResult `json:"results"`
}

// SARIFTool describes the analysis tool.
type SARIFTool struct {
	Driver SARIFDriver `json:"driver"`
}

// SARIFDriver contains tool metadata and rules.
type SARIFDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []SARIFRule `json:"rules"`
}

// SARIFRule describes an analyzer.
type SARIFRule struct {
	ID               string               `json:"id"`
	ShortDescription SARIFMultiformatText `json:"shortDescription,omitempty"`
	DefaultConfig    *SARIFRuleConfig     `json:"defaultConfiguration,omitempty"`
}

// SARIFMultiformatText contains text in multiple formats.
type SARIFMultiformatText struct {
	Text string `json:"text"`
}

// SARIFRuleConfig contains rule configuration.
type SARIFRuleConfig struct {
	Level string `json:"level"`
}

// SARIFResult represents a single finding.
type SARIFResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   SARIFMessage    `json:"message"`
	Locations []SARIFLocation `json:"locations"`
	Fixes     []SARIFFix      `json:"fixes,omitempty"`
}

// SARIFMessage contains the result message.
type SARIFMessage struct {
	Text string `json:"text"`
}

// SARIFLocation describes a code location.
type SARIFLocation struct {
	PhysicalLocation SARIFPhysicalLocation `json:"physicalLocation"`
}

// SARIFPhysicalLocation contains file path and region.
type SARIFPhysicalLocation struct {
	ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
	Region           SARIFRegion           `json:"region"`
}

// SARIFArtifactLocation contains the file URI.
type SARIFArtifactLocation struct {
	URI string `json:"uri"`
}

// SARIFRegion describes the affected text region.
type SARIFRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
}

// SARIFFix represents a proposed fix.
type SARIFFix struct {
	Description     SARIFMessage          `json:"description"`
	ArtifactChanges []SARIFArtifactChange `json:"artifactChanges"`
}

// SARIFArtifactChange describes changes to a file.
type SARIFArtifactChange struct {
	ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
	Replacements     []SARIFReplacement    `json:"replacements"`
}

// SARIFReplacement describes a text replacement.
type SARIFReplacement struct {
	DeletedRegion   SARIFRegion           `json:"deletedRegion"`
	InsertedContent *SARIFInsertedContent `json:"insertedContent,omitempty"`
}

// SARIFInsertedContent contains the replacement text.
type SARIFInsertedContent struct {
	Text string `json:"text"`
}

// SARIFWriter renders reports as SARIF.
type SARIFWriter struct {
	opts Options
	out  io.Writer
}

// NewSARIFWriter creates a new SARIF report writer.
func NewSARIFWriter(opts Options) *SARIFWriter {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	return &SARIFWriter{
		opts: opts,
		out:  opts.Writer,
	}
}

// WriteGlobal encodes the whole run as a single SARIF document.
func (w *SARIFWriter) WriteGlobal(g *GlobalReport) error {
	output := buildSARIFOutput(g)

	encoder := json.NewEncoder(w.out)
	if !w.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encode SARIF: %w", err)
	}
	return nil
}

func buildSARIFOutput(g *GlobalReport) *SARIFOutput {
	output := &SARIFOutput{
		Schema:  sarifSchemaURI,
		Version: sarifVersion,
		Runs: []SARIFRun{{
			Tool: SARIFTool{
				Driver: SARIFDriver{
					Name:           "rustqual",
					Version:        "0.1.0",
					InformationURI: "https://github.com/quallab/rustqual",
					Rules:          make([]SARIFRule, 0),
				},
			},
			Results: make([]SARIFResult, 0),
		}},
	}

	if g == nil {
		return output
	}

	rulesSeen := make(map[string]bool)

	for _, r := range g.Reports {
		for _, res := range r.Results {
			for _, issue := range res.Issues {
				if !rulesSeen[res.Analyzer] {
					rule := SARIFRule{
						ID: res.Analyzer,
						ShortDescription: SARIFMultiformatText{
							Text: issue.Message,
						},
						DefaultConfig: &SARIFRuleConfig{
							Level: "warning",
						},
					}
					output.Runs[0].Tool.Driver.Rules = append(output.Runs[0].Tool.Driver.Rules, rule)
					rulesSeen[res.Analyzer] = true
				}

				startLine := issue.Line
				if startLine < 1 {
					startLine = 1
				}

				sarifResult := SARIFResult{
					RuleID: res.Analyzer,
					Level:  "warning",
					Message: SARIFMessage{
						Text: issue.Message,
					},
					Locations: []SARIFLocation{{
						PhysicalLocation: SARIFPhysicalLocation{
							ArtifactLocation: SARIFArtifactLocation{
								URI: r.Path,
							},
							Region: SARIFRegion{
								StartLine:   startLine,
								StartColumn: issue.Column,
							},
						},
					}},
				}

				if issue.Fix.Available() {
					sarifResult.Fixes = append(sarifResult.Fixes, SARIFFix{
						Description: SARIFMessage{
							Text: fixDescription(issue),
						},
						ArtifactChanges: []SARIFArtifactChange{{
							ArtifactLocation: SARIFArtifactLocation{
								URI: r.Path,
							},
							Replacements: []SARIFReplacement{{
								DeletedRegion: SARIFRegion{
									StartLine: startLine,
								},
								InsertedContent: fixInsertedContent(issue),
							}},
						}},
					})
				}

				output.Runs[0].Results = append(output.Runs[0].Results, sarifResult)
			}
		}
	}

	return output
}

// fixDescription summarizes the repair attached to a fixable issue.
func fixDescription(issue analyzer.Issue) string {
	switch issue.Fix.Kind {
	case analyzer.FixWithImport:
		return "Add import: " + issue.Fix.Import
	case analyzer.FixSimple:
		if issue.Fix.Replacement == "" {
			return "Remove line"
		}
		return "Replace line with: " + issue.Fix.Replacement
	default:
		return ""
	}
}

// fixInsertedContent returns the replacement text, or nil for a line removal.
func fixInsertedContent(issue analyzer.Issue) *SARIFInsertedContent {
	if issue.Fix.Kind == analyzer.FixSimple && issue.Fix.Replacement == "" {
		return nil
	}
	return &SARIFInsertedContent{Text: issue.Fix.Replacement}
}
