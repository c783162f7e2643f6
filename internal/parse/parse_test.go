package parse

import (
	"reflect"
	"testing"
)

const sampleResume = `Jane Doe
jane.doe@example.com | +1 555-123-4567

Objective: Build reliable backend systems
that scale.

Experience
Senior Engineer
Acme Corp
Jan 2020 - Present
Built Go services with Docker and AWS.

Engineer
Beta LLC
2017 - 2019
Wrote Python tooling.

Education
State University
BSc Computer Science
2013 - 2017
GPA: 3.8

Skills
Go, Python, SQL, Node.js
`

func TestParseSampleResume(t *testing.T) {
	p := Parse(sampleResume)

	if p.Name != "Jane Doe" {
		t.Fatalf("name = %q", p.Name)
	}
	if !reflect.DeepEqual(p.Emails, []string{"jane.doe@example.com"}) {
		t.Fatalf("emails = %v", p.Emails)
	}
	if !reflect.DeepEqual(p.Phones, []string{"+1 555-123-4567"}) {
		t.Fatalf("phones = %v", p.Phones)
	}
	if p.CareerObjective != "Build reliable backend systems that scale." {
		t.Fatalf("objective = %q", p.CareerObjective)
	}
	wantSkills := []string{"AWS", "Docker", "Go", "Node.js", "Python", "SQL"}
	if !reflect.DeepEqual(p.Skills, wantSkills) {
		t.Fatalf("skills = %v", p.Skills)
	}

	wantJobs := []Job{
		{JobTitle: "Senior Engineer", CompanyName: "Acme Corp", Dates: []string{"Jan 2020 - Present"}, Description: "Built Go services with Docker and AWS."},
		{JobTitle: "Engineer", CompanyName: "Beta LLC", Dates: []string{"2017 - 2019"}, Description: "Wrote Python tooling."},
	}
	if !reflect.DeepEqual(p.JobHistory, wantJobs) {
		t.Fatalf("jobs = %+v", p.JobHistory)
	}

	wantEdu := []Education{
		{SchoolName: "State University", Degree: "BSc Computer Science", Dates: []string{"2013 - 2017"}, GPA: "3.8"},
	}
	if !reflect.DeepEqual(p.Education, wantEdu) {
		t.Fatalf("education = %+v", p.Education)
	}
}

func TestParseEmptyText(t *testing.T) {
	p := Parse("")
	if p.Name != "" || p.CareerObjective != "" {
		t.Fatalf("expected empty profile, got %+v", p)
	}
	if p.Emails == nil || p.Phones == nil || p.Skills == nil || p.JobHistory == nil || p.Education == nil {
		t.Fatal("list fields should be empty, not nil")
	}
}

func TestHeadingDetection(t *testing.T) {
	tests := []struct {
		line string
		kind sectionKind
		rest string
		ok   bool
	}{
		{line: "Experience", kind: sectionExperience, ok: true},
		{line: "  WORK HISTORY:", kind: sectionExperience, ok: true},
		{line: "Summary - Backend engineer", kind: sectionObjective, rest: "Backend engineer", ok: true},
		{line: "Technical Skills", kind: sectionSkills, ok: true},
		{line: "Experienced engineer", ok: false},
		{line: "Educational background", ok: false},
		{line: "Acme Corp", ok: false},
	}
	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			kind, rest, ok := heading(tc.line)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			if kind != tc.kind || rest != tc.rest {
				t.Fatalf("got (%v, %q), want (%v, %q)", kind, rest, tc.kind, tc.rest)
			}
		})
	}
}

func TestSkillsMatchWholeWords(t *testing.T) {
	p := Parse("Worked with javascript and c++ daily; no Java here.\nDjango fan")
	want := []string{"C++", "Java", "JavaScript"}
	if !reflect.DeepEqual(p.Skills, want) {
		t.Fatalf("skills = %v, want %v", p.Skills, want)
	}
}

func TestShortSkillsNeedCapital(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "prose go", text: "Jane Doe\n\nSummary: ready to go the extra mile for customers.", want: []string{}},
		{name: "prose git", text: "Learned to git it done under pressure.", want: []string{}},
		{name: "capitalised", text: "Skills: Go, Git, aws", want: []string{"Git", "Go"}},
		{name: "upper case", text: "Skills: GO and SQL", want: []string{"Go", "SQL"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Parse(tc.text).Skills; !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("skills = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEducationWithoutGPA(t *testing.T) {
	p := Parse("Education\nCity College\nAssociate of Arts\nMay 2015\n")
	if len(p.Education) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(p.Education))
	}
	e := p.Education[0]
	if e.GPA != "" || !reflect.DeepEqual(e.Dates, []string{"May 2015"}) {
		t.Fatalf("unexpected entry %+v", e)
	}
}
