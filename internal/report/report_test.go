package report

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Orkogithub/nutanix-cluster-info/internal/testfixtures"
	"github.com/Orkogithub/nutanix-cluster-info/pkg/inventory"
)

var generatedAt = time.Date(2026, time.October, 18, 9, 5, 7, 0, time.UTC)

func testMeta() Meta {
	return Meta{
		GeneratedAt: generatedAt,
		GeneratedBy: "Jane Admin",
		LocalUser:   "jane",
		RunID:       "3f1c2a9e-5b7d-4c1e-9a0b-123456789abc",
	}
}

func testFields(t *testing.T) *inventory.Fields {
	t.Helper()
	fields, err := inventory.Normalize(testfixtures.Cluster(t), testfixtures.Containers(t))
	require.NoError(t, err)
	return fields
}

func pdfOptions(dir string) Options {
	return Options{
		Format:    FormatPDF,
		OutputDir: dir,
		PageSize:  "a4",
		Font:      "Helvetica",
		FontSize:  12,
	}
}

func TestSubstitute(t *testing.T) {
	values := map[string]string{
		"name":         "Jane",
		"name_servers": "10.0.0.2",
		"cost":         "5",
	}

	tests := []struct {
		name string
		tmpl string
		want string
	}{
		{name: "bare", tmpl: "by $name.", want: "by Jane."},
		{name: "braced", tmpl: "${name}s", want: "Janes"},
		{name: "longest identifier wins", tmpl: "$name_servers", want: "10.0.0.2"},
		{name: "escaped dollar", tmpl: "$$cost is $$$cost", want: "$cost is $5"},
		{name: "unknown bare left intact", tmpl: "$unknown and $name", want: "$unknown and Jane"},
		{name: "unknown braced left intact", tmpl: "${unknown}", want: "${unknown}"},
		{name: "trailing dollar", tmpl: "price $", want: "price $"},
		{name: "dollar before digit", tmpl: "$5", want: "$5"},
		{name: "unterminated brace", tmpl: "${name", want: "${name"},
		{name: "empty braces", tmpl: "${}", want: "${}"},
		{name: "no placeholders", tmpl: "<p>plain</p>", want: "<p>plain</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Substitute(tt.tmpl, values))
		})
	}
}

func TestSubstitute_ValuesAreNotRescanned(t *testing.T) {
	got := Substitute("$a", map[string]string{"a": "$b", "b": "nope"})
	assert.Equal(t, "$b", got)
}

func TestPlaceholders(t *testing.T) {
	fields := testFields(t)
	fields.ClusterName = "Lab <prod> & co"

	values := Placeholders(testMeta(), fields)

	assert.Equal(t, "18-Oct-2026", values["day"])
	assert.Equal(t, "090507", values["now"])
	assert.Equal(t, "Jane Admin", values["name"])
	assert.Equal(t, "jane", values["username"])
	assert.Equal(t, "Lab &lt;prod&gt; &amp; co", values["cluster_name"])
	assert.Equal(t, "10.0.0.5", values["cluster_ip"])
	assert.Equal(t, "3", values["nodes"])
	assert.Equal(t, "5.20.4", values["nos"])
	assert.Equal(t, "AHV", values["hypervisors"])
	assert.Equal(t, "NX-3060-G5 [S/N 16SM12345678]", values["models"])
	assert.Equal(t, "2", values["desired_rf"])
	assert.Equal(t, "2", values["actual_rf"])
	assert.Equal(t, "1", values["container_count"])
	assert.Equal(t,
		"<tr><td>default-container-12345</td><td>2</td><td>true</td><td>POST_PROCESS</td></tr>\n",
		values["container_rows"])
}

func TestPlaceholders_NoContainers(t *testing.T) {
	fields := testFields(t)
	fields.Containers = nil

	values := Placeholders(testMeta(), fields)
	assert.Contains(t, values["container_rows"], "No storage containers")
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name    string
		cluster string
		format  string
		want    string
	}{
		{name: "pdf", cluster: "NTNX-Lab", format: FormatPDF, want: "18-Oct-2026_090507_NTNX-Lab_cluster.pdf"},
		{name: "html", cluster: "NTNX-Lab", format: FormatHTML, want: "18-Oct-2026_090507_NTNX-Lab_cluster.html"},
		{name: "path separators", cluster: "../etc/passwd", format: FormatPDF, want: "18-Oct-2026_090507__etc_passwd_cluster.pdf"},
		{name: "spaces", cluster: "Prod Cluster 1", format: FormatPDF, want: "18-Oct-2026_090507_Prod_Cluster_1_cluster.pdf"},
		{name: "empty", cluster: "  ", format: FormatPDF, want: "18-Oct-2026_090507_unnamed_cluster.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FileName(generatedAt, tt.cluster, tt.format)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, FileName(generatedAt, tt.cluster, tt.format), "deterministic")
			assert.NotContains(t, got, string(filepath.Separator))
		})
	}
}

func TestRender_HTML(t *testing.T) {
	dir := t.TempDir()

	path, err := Render(Options{Format: FormatHTML, OutputDir: dir}, testMeta(), testFields(t))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "18-Oct-2026_090507_NTNX-Lab_cluster.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc := string(data)

	assert.Contains(t, doc, "Generated on <strong>18-Oct-2026</strong> at <strong>090507</strong> by <strong>Jane Admin</strong> (logged in as jane)")
	assert.Contains(t, doc, "<td>NTNX-Lab</td>")
	assert.Contains(t, doc, "<td>0.pool.ntp.org, 1.pool.ntp.org</td>")
	assert.Contains(t, doc, "<td>default-container-12345</td>")
	assert.Contains(t, doc, "Run ID 3f1c2a9e-5b7d-4c1e-9a0b-123456789abc")
	assert.NotContains(t, doc, "$cluster_name")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestRender_CustomTemplate(t *testing.T) {
	dir := t.TempDir()
	tmplPath := filepath.Join(t.TempDir(), "custom.html")
	require.NoError(t, os.WriteFile(tmplPath, []byte("$cluster_name costs $$0 ($unknown)"), 0600))

	path, err := Render(Options{Format: FormatHTML, OutputDir: dir, TemplatePath: tmplPath}, testMeta(), testFields(t))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "NTNX-Lab costs $0 ($unknown)", string(data))
}

func TestRender_PDF(t *testing.T) {
	for _, size := range []string{"a4", "letter"} {
		t.Run(size, func(t *testing.T) {
			dir := t.TempDir()
			opts := pdfOptions(dir)
			opts.PageSize = size

			path, err := Render(opts, testMeta(), testFields(t))
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(path, "_NTNX-Lab_cluster.pdf"))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "PDF header")
			assert.Contains(t, string(bytes.TrimSpace(data[len(data)-16:])), "%%EOF")
		})
	}
}

func TestRender_PDFNonASCII(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*inventory.Fields)
		suffix string
	}{
		{
			name:   "latin-1 cluster name",
			mutate: func(f *inventory.Fields) { f.ClusterName = "Göteborg-Lab" },
			suffix: "_Göteborg-Lab_cluster.pdf",
		},
		{
			name: "cp1252-only container name",
			mutate: func(f *inventory.Fields) {
				f.Containers = append(f.Containers, inventory.ContainerRow{Name: "Lab-€", ReplicationFactor: "2"})
			},
			suffix: "_NTNX-Lab_cluster.pdf",
		},
		{
			name: "accented model and timezone",
			mutate: func(f *inventory.Fields) {
				f.Models = "Modèle Été [S/N ÅÄÖ-1]"
				f.Timezone = "Europe/Zürich"
			},
			suffix: "_NTNX-Lab_cluster.pdf",
		},
		{
			name:   "outside cp1252",
			mutate: func(f *inventory.Fields) { f.ClusterName = "東京-Lab" },
			suffix: "_東京-Lab_cluster.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			fields := testFields(t)
			tt.mutate(fields)

			path, err := Render(pdfOptions(dir), testMeta(), fields)
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(path, tt.suffix), path)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "PDF header")
		})
	}
}

func TestWriteFileAtomic_PanicLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.pdf")

	assert.Panics(t, func() {
		_ = writeFileAtomic(path, func(w io.Writer) error {
			_, _ = io.WriteString(w, "partial")
			panic("render failed")
		})
	})

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temporary file removed after a panic")
}

func TestRender_PDFManyContainers(t *testing.T) {
	fields := testFields(t)
	for i := 0; i < 120; i++ {
		fields.Containers = append(fields.Containers, inventory.ContainerRow{
			Name:               "ctr-" + strings.Repeat("x", i%30),
			ReplicationFactor:  "2",
			CompressionEnabled: "false",
			OnDiskDedup:        "NONE",
		})
	}

	_, err := Render(pdfOptions(t.TempDir()), testMeta(), fields)
	require.NoError(t, err)
}

func TestRender_FailureLeavesNoFile(t *testing.T) {
	tests := []struct {
		name string
		opts func(dir string) Options
	}{
		{
			name: "unknown font",
			opts: func(dir string) Options {
				o := pdfOptions(dir)
				o.Font = "NoSuchFont"
				return o
			},
		},
		{
			name: "missing template",
			opts: func(dir string) Options {
				return Options{Format: FormatHTML, OutputDir: dir, TemplatePath: filepath.Join(dir, "missing.html")}
			},
		},
		{
			name: "unsupported format",
			opts: func(dir string) Options {
				return Options{Format: "docx", OutputDir: dir}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()

			path, err := Render(tt.opts(dir), testMeta(), testFields(t))
			require.Error(t, err)
			assert.Empty(t, path)

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, entries, "no partial or temporary file left behind")
		})
	}
}

func TestRender_NilFields(t *testing.T) {
	_, err := Render(pdfOptions(t.TempDir()), testMeta(), nil)
	require.Error(t, err)
}

func TestLoadTemplate_Default(t *testing.T) {
	tmpl, err := LoadTemplate("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTemplate(), tmpl)
	assert.Contains(t, tmpl, "$container_rows")
}
