package openalex

import "testing"

func TestNormalizeWorkID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"native id", "W2741809807", "W2741809807"},
		{"openalex url", "https://openalex.org/W2741809807", "W2741809807"},
		{"bare doi", "10.1038/nature12373", "doi:10.1038/nature12373"},
		{"doi prefix", "doi:10.1038/nature12373", "doi:10.1038/nature12373"},
		{"doi url", "doi:https://doi.org/10.1038/nature12373", "doi:10.1038/nature12373"},
		{"pmid lower", "pmid:23851394", "pmid:23851394"},
		{"pmid upper", "PMID:23851394", "pmid:23851394"},
		{"mag upper", "MAG:2741809807", "mag:2741809807"},
		{"openalex url other shape", "http://openalex.org/works/W2741809807", "W2741809807"},
		{"passthrough", "garbage-input", "garbage-input"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeWorkID(tt.in); got != tt.want {
				t.Errorf("NormalizeWorkID(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeWorkID_Idempotent(t *testing.T) {
	inputs := []string{
		"https://openalex.org/W2741809807",
		"10.1038/nature12373",
		"PMID:23851394",
		"W2741809807",
	}
	for _, in := range inputs {
		once := NormalizeWorkID(in)
		if twice := NormalizeWorkID(once); twice != once {
			t.Errorf("NormalizeWorkID not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalizeAuthorID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"native id", "A5023888391", "A5023888391"},
		{"openalex url", "https://openalex.org/A5023888391", "A5023888391"},
		{"orcid url", "https://orcid.org/0000-0002-1825-0097", "orcid:0000-0002-1825-0097"},
		{"bare orcid", "0000-0002-1825-0097", "orcid:0000-0002-1825-0097"},
		{"orcid prefix", "orcid:0000-0002-1825-0097", "orcid:0000-0002-1825-0097"},
		{"passthrough", "some-author", "some-author"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeAuthorID(tt.in); got != tt.want {
				t.Errorf("NormalizeAuthorID(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeAuthorID_Idempotent(t *testing.T) {
	inputs := []string{
		"https://orcid.org/0000-0002-1825-0097",
		"0000-0002-1825-0097",
		"A5023888391",
	}
	for _, in := range inputs {
		once := NormalizeAuthorID(in)
		if twice := NormalizeAuthorID(once); twice != once {
			t.Errorf("NormalizeAuthorID not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalizeInstitutionID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"native id", "I27837315", "I27837315"},
		{"openalex url", "https://openalex.org/I27837315", "I27837315"},
		{"ror url", "https://ror.org/042nb2s44", "ror:042nb2s44"},
		{"ror prefix", "ror:042nb2s44", "ror:042nb2s44"},
		{"passthrough", "mit", "mit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeInstitutionID(tt.in); got != tt.want {
				t.Errorf("NormalizeInstitutionID(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeSourceID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"native id", "S137773608", "S137773608"},
		{"openalex url", "https://openalex.org/S137773608", "S137773608"},
		{"bare issn", "2041-1723", "issn:2041-1723"},
		{"issn prefix upper", "ISSN:2041-1723", "issn:2041-1723"},
		{"nine chars no dash", "204111723", "204111723"},
		{"passthrough", "nature", "nature"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeSourceID(tt.in); got != tt.want {
				t.Errorf("NormalizeSourceID(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("https://openalex.org/W2741809807"); got != "W2741809807" {
		t.Errorf("ShortID = %q, want W2741809807", got)
	}
	if got := ShortID("W2741809807"); got != "W2741809807" {
		t.Errorf("ShortID = %q, want W2741809807", got)
	}
}
