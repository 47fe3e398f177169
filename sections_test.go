package salin

import "testing"

func TestSectionNames(t *testing.T) {
	names := SectionNames()
	want := []string{"common", "auth", "admin", "barangayPresident", "pwdMember", "forms", "tables", "messages"}
	if len(names) != len(want) {
		t.Fatalf("Expected %d sections, got %d", len(want), len(names))
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("Section %d: expected %q, got %q", i, name, names[i])
		}
	}
}

func TestSectionNamesIsCopy(t *testing.T) {
	names := SectionNames()
	names[0] = "mutated"
	if SectionNames()[0] != "common" {
		t.Error("SectionNames should return a copy")
	}
}

func TestBaseSection(t *testing.T) {
	for _, name := range SectionNames() {
		tree, ok := BaseSection(name)
		if !ok {
			t.Errorf("BaseSection(%q) missing", name)
			continue
		}
		if len(tree.Leaves()) == 0 {
			t.Errorf("BaseSection(%q) has no copy", name)
		}
	}

	if _, ok := BaseSection("nonexistent"); ok {
		t.Error("BaseSection of an unknown name should fail")
	}
}

func TestBaseSectionNestedKeys(t *testing.T) {
	messages, ok := BaseSection("messages")
	if !ok {
		t.Fatal("messages section missing")
	}

	node, ok := messages.Lookup("success")
	if !ok {
		t.Fatal("messages.success missing")
	}
	success, ok := node.(Tree)
	if !ok {
		t.Fatalf("messages.success should be nested, got %T", node)
	}
	if leaf, _ := success.Lookup("saved"); leaf != Leaf("Record saved successfully") {
		t.Errorf("messages.success.saved = %v", leaf)
	}
}
