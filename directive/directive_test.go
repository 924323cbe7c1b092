package directive

import (
	"testing"

	"github.com/bassmanitram/envlog/core"
)

func TestParse_Empty(t *testing.T) {
	rs := Parse("")

	if rs.Len() != 0 {
		t.Errorf("expected zero rules, got %d", rs.Len())
	}
	if got := rs.DefaultLevel(); got != core.WarnLevel {
		t.Errorf("DefaultLevel() = %v, want %v", got, core.WarnLevel)
	}
	if got := rs.Level("anything"); got != core.WarnLevel {
		t.Errorf("Level(anything) = %v, want %v", got, core.WarnLevel)
	}
}

func TestParse_BareLevel(t *testing.T) {
	rs := Parse("info")

	if rs.Len() != 0 {
		t.Errorf("expected zero rules, got %d", rs.Len())
	}
	if got := rs.DefaultLevel(); got != core.InfoLevel {
		t.Errorf("DefaultLevel() = %v, want %v", got, core.InfoLevel)
	}
}

func TestParse_LastBareLevelWins(t *testing.T) {
	rs := Parse("info,debug")

	if got := rs.DefaultLevel(); got != core.DebugLevel {
		t.Errorf("DefaultLevel() = %v, want %v", got, core.DebugLevel)
	}
}

func TestParse_Rules(t *testing.T) {
	rs := Parse("warn,myapp=info,myapp.database=trace")

	tests := []struct {
		logger string
		want   core.Level
	}{
		{"myapp", core.InfoLevel},
		{"myapp.database", core.TraceLevel},
		{"myapp.api", core.InfoLevel},
		{"somelib", core.WarnLevel},
	}
	for _, tt := range tests {
		if got := rs.Level(tt.logger); got != tt.want {
			t.Errorf("Level(%q) = %v, want %v", tt.logger, got, tt.want)
		}
	}
}

func TestParse_PreservesRuleOrder(t *testing.T) {
	rs := Parse("a=debug,b=info,a=error")

	rules := rs.Rules()
	if len(rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(rules))
	}
	want := []core.Rule{
		{Target: "a", Level: core.DebugLevel},
		{Target: "b", Level: core.InfoLevel},
		{Target: "a", Level: core.ErrorLevel},
	}
	for i, r := range rules {
		if r != want[i] {
			t.Errorf("rules[%d] = %+v, want %+v", i, r, want[i])
		}
	}
	// The later duplicate wins at resolution time.
	if got := rs.Level("a"); got != core.ErrorLevel {
		t.Errorf("Level(a) = %v, want %v", got, core.ErrorLevel)
	}
}

func TestParse_Whitespace(t *testing.T) {
	rs := Parse("  warn , myapp = info ,, myapp.database=trace  ")

	if got := rs.DefaultLevel(); got != core.WarnLevel {
		t.Errorf("DefaultLevel() = %v, want %v", got, core.WarnLevel)
	}
	if got := rs.Level("myapp"); got != core.InfoLevel {
		t.Errorf("Level(myapp) = %v, want %v", got, core.InfoLevel)
	}
	if got := rs.Level("myapp.database"); got != core.TraceLevel {
		t.Errorf("Level(myapp.database) = %v, want %v", got, core.TraceLevel)
	}
}

func TestParse_CaseInsensitiveLevels(t *testing.T) {
	rs := Parse("ERROR,myapp=Info,myapp.database=TRACE")

	if got := rs.DefaultLevel(); got != core.ErrorLevel {
		t.Errorf("DefaultLevel() = %v, want %v", got, core.ErrorLevel)
	}
	if got := rs.Level("myapp"); got != core.InfoLevel {
		t.Errorf("Level(myapp) = %v, want %v", got, core.InfoLevel)
	}
	if got := rs.Level("myapp.database"); got != core.TraceLevel {
		t.Errorf("Level(myapp.database) = %v, want %v", got, core.TraceLevel)
	}
}

func TestParse_WarningAlias(t *testing.T) {
	rs := Parse("warning,myapp=warning")

	if got := rs.DefaultLevel(); got != core.WarnLevel {
		t.Errorf("DefaultLevel() = %v, want %v", got, core.WarnLevel)
	}
	if got := rs.Level("myapp"); got != core.WarnLevel {
		t.Errorf("Level(myapp) = %v, want %v", got, core.WarnLevel)
	}
}

func TestParse_MalformedTolerance(t *testing.T) {
	rs := Parse("warn,bogus=notalevel,myapp=info")

	if got := rs.Level("myapp"); got != core.InfoLevel {
		t.Errorf("Level(myapp) = %v, want %v", got, core.InfoLevel)
	}
	// The only rule for "bogus" was dropped, so it falls to the default.
	if got := rs.Level("bogus"); got != core.WarnLevel {
		t.Errorf("Level(bogus) = %v, want %v", got, core.WarnLevel)
	}
}

func TestParse_SplitsOnFirstEquals(t *testing.T) {
	// "a=b=c" has target "a" and level name "b=c", which is unknown.
	rs, skipped := ParseReport("a=b=c,myapp=info")

	if rs.Len() != 1 {
		t.Errorf("expected 1 rule, got %d", rs.Len())
	}
	if len(skipped) != 1 {
		t.Fatalf("expected 1 skipped token, got %d", len(skipped))
	}
	if skipped[0].Token != "a=b=c" || skipped[0].Reason != SkipUnknownLevel {
		t.Errorf("skipped[0] = %+v, want {a=b=c UnknownLevel}", skipped[0])
	}
}

func TestParse_OffLevel(t *testing.T) {
	rs := Parse("off,noisy=off,myapp=debug")

	if got := rs.DefaultLevel(); got != core.OffLevel {
		t.Errorf("DefaultLevel() = %v, want %v", got, core.OffLevel)
	}
	if rs.Enabled("noisy", core.ErrorLevel) {
		t.Error("ERROR should not be enabled for a logger ruled off")
	}
	if !rs.Enabled("myapp", core.DebugLevel) {
		t.Error("DEBUG should be enabled for myapp")
	}
	if rs.Enabled("other", core.ErrorLevel) {
		t.Error("ERROR should not be enabled under the off default")
	}
}

func TestParseReport(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		token  string
		reason SkipReason
	}{
		{"unknown bare level", "loud", "loud", SkipUnknownLevel},
		{"unknown rule level", "myapp=chatty", "myapp=chatty", SkipUnknownLevel},
		{"empty target", "=info", "=info", SkipEmptyTarget},
		{"leading dot", ".myapp=info", ".myapp=info", SkipEmptySegment},
		{"trailing dot", "myapp.=info", "myapp.=info", SkipEmptySegment},
		{"double dot", "my..app=info", "my..app=info", SkipEmptySegment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, skipped := ParseReport(tt.raw)
			if rs.Len() != 0 {
				t.Errorf("expected zero rules, got %d", rs.Len())
			}
			if len(skipped) != 1 {
				t.Fatalf("expected 1 skipped token, got %d", len(skipped))
			}
			if skipped[0].Token != tt.token {
				t.Errorf("Token = %q, want %q", skipped[0].Token, tt.token)
			}
			if skipped[0].Reason != tt.reason {
				t.Errorf("Reason = %v, want %v", skipped[0].Reason, tt.reason)
			}
		})
	}
}

func TestParseReport_CleanInput(t *testing.T) {
	_, skipped := ParseReport("warn,myapp=info")
	if skipped != nil {
		t.Errorf("expected nil report for clean input, got %v", skipped)
	}
}

func TestValidTarget(t *testing.T) {
	tests := []struct {
		target string
		want   bool
	}{
		{"myapp", true},
		{"myapp.database", true},
		{"a.b.c.d", true},
		{"", false},
		{".myapp", false},
		{"myapp.", false},
		{"my..app", false},
		{".", false},
	}

	for _, tt := range tests {
		if got := ValidTarget(tt.target); got != tt.want {
			t.Errorf("ValidTarget(%q) = %v, want %v", tt.target, got, tt.want)
		}
	}
}

func TestSkipReason_String(t *testing.T) {
	tests := []struct {
		reason SkipReason
		want   string
	}{
		{SkipUnknownLevel, "UnknownLevel"},
		{SkipEmptyTarget, "EmptyTarget"},
		{SkipEmptySegment, "EmptySegment"},
		{SkipReason(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.reason.String(); got != tt.want {
			t.Errorf("SkipReason.String() = %v, want %v", got, tt.want)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Parse("warn,myapp=info,myapp.database=trace,somelib=error")
	}
}
