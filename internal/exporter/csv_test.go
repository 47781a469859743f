package exporter

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sellincli/internal/dataframe"
)

func TestNewCSVWriter(t *testing.T) {
	writer := NewCSVWriter("/saida")

	assert.NotNil(t, writer)
	assert.Equal(t, "/saida", writer.outputDir)
}

func TestCSVWriter_WriteCSV(t *testing.T) {
	tests := []struct {
		name     string
		filePath string
		options  WriteOptions
		validate func(t *testing.T, filePath string)
	}{
		{
			name:     "basic write with headers",
			filePath: "basico.csv",
			options: WriteOptions{
				Headers: []string{"cliente", "canal", "receita"},
				Records: [][]string{
					{"ACME", "Varejo", "1200.5"},
					{"GLOBO", "Atacado", "77"},
				},
			},
			validate: func(t *testing.T, filePath string) {
				content, err := os.ReadFile(filePath)
				require.NoError(t, err)

				lines := strings.Split(strings.TrimSpace(string(content)), "\n")
				assert.Len(t, lines, 3) // header + 2 records
				assert.Equal(t, "cliente,canal,receita", lines[0])
				assert.Equal(t, "ACME,Varejo,1200.5", lines[1])
				assert.Equal(t, "GLOBO,Atacado,77", lines[2])
			},
		},
		{
			name:     "write with BOM prefix",
			filePath: "com_bom.csv",
			options: WriteOptions{
				Headers:   []string{"razão social"},
				Records:   [][]string{{"Açaí do Sul"}},
				BOMPrefix: true,
			},
			validate: func(t *testing.T, filePath string) {
				content, err := os.ReadFile(filePath)
				require.NoError(t, err)

				assert.True(t, bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF}))
				assert.Contains(t, string(content), "Açaí do Sul")
			},
		},
		{
			name:     "fields with commas are quoted",
			filePath: "virgulas.csv",
			options: WriteOptions{
				Headers: []string{"cliente"},
				Records: [][]string{{"ACME, Filial Sul"}},
			},
			validate: func(t *testing.T, filePath string) {
				content, err := os.ReadFile(filePath)
				require.NoError(t, err)
				assert.Contains(t, string(content), `"ACME, Filial Sul"`)
			},
		},
		{
			name:     "nested relative path is created",
			filePath: filepath.Join("periodo_5", "sellin.csv"),
			options: WriteOptions{
				Headers: []string{"a"},
				Records: [][]string{{"1"}},
			},
			validate: func(t *testing.T, filePath string) {
				_, err := os.Stat(filePath)
				assert.NoError(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outputDir := t.TempDir()
			writer := NewCSVWriter(outputDir)

			err := writer.WriteCSV(tt.filePath, tt.options)
			require.NoError(t, err)
			tt.validate(t, filepath.Join(outputDir, tt.filePath))
		})
	}
}

func TestCSVWriter_WriteFrame(t *testing.T) {
	outputDir := t.TempDir()
	writer := NewCSVWriter(outputDir)

	frame := dataframe.New(
		[]string{"cliente", "canal", "receita"},
		[][]interface{}{
			{"ACME", "Varejo", 1200.5},
			{"GLOBO", nil, 77},
		},
	)

	require.NoError(t, writer.WriteFrame("tratado.csv", frame, true))

	content, err := os.ReadFile(filepath.Join(outputDir, "tratado.csv"))
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF}))

	lines := strings.Split(strings.TrimSpace(string(bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF}))), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "cliente,canal,receita", lines[0])
	assert.Equal(t, "ACME,Varejo,1200.5", lines[1])
	// Missing cell renders as an empty field.
	assert.Equal(t, "GLOBO,,77", lines[2])
}

func TestCSVWriter_WriteFrameOverwrites(t *testing.T) {
	outputDir := t.TempDir()
	writer := NewCSVWriter(outputDir)

	frame := dataframe.New([]string{"a"}, [][]interface{}{{"primeiro"}})
	require.NoError(t, writer.WriteFrame("saida.csv", frame, false))

	frame = dataframe.New([]string{"a"}, [][]interface{}{{"segundo"}})
	require.NoError(t, writer.WriteFrame("saida.csv", frame, false))

	content, err := os.ReadFile(filepath.Join(outputDir, "saida.csv"))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "primeiro")
	assert.Contains(t, string(content), "segundo")
}

func TestCSVWriter_AppendToCSV(t *testing.T) {
	outputDir := t.TempDir()
	writer := NewCSVWriter(outputDir)

	require.NoError(t, writer.WriteCSV("acumulado.csv", WriteOptions{
		Headers: []string{"cliente"},
		Records: [][]string{{"ACME"}},
	}))
	require.NoError(t, writer.AppendToCSV("acumulado.csv", [][]string{{"GLOBO"}}))

	content, err := os.ReadFile(filepath.Join(outputDir, "acumulado.csv"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	assert.Equal(t, []string{"cliente", "ACME", "GLOBO"}, lines)
}

func TestCSVWriter_AbsolutePathBypassesOutputDir(t *testing.T) {
	outputDir := t.TempDir()
	elsewhere := t.TempDir()
	writer := NewCSVWriter(outputDir)

	target := filepath.Join(elsewhere, "fora.csv")
	require.NoError(t, writer.WriteCSV(target, WriteOptions{
		Headers: []string{"a"},
		Records: [][]string{{"1"}},
	}))

	_, err := os.Stat(target)
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(outputDir, "fora.csv"))
	assert.True(t, os.IsNotExist(err))
}
