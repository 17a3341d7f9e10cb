package document

import "testing"

func TestCollectPreservesNestedOrder(t *testing.T) {
	doc := &Document{
		Files: []File{
			{
				ID: "f1",
				Pages: []Page{
					{ID: "p1", Objects: []DesignObject{{ID: "o1", Type: "rectangle"}, {ID: "o2", Type: "text"}}},
					{ID: "p2", Objects: []DesignObject{{ID: "o3", Type: "group"}}},
				},
			},
			{
				ID: "f2",
				Pages: []Page{
					{ID: "p3", Objects: []DesignObject{{ID: "o4", Type: "vector"}}},
				},
			},
		},
	}

	collected := Collect(doc)
	if len(collected) != 4 {
		t.Fatalf("Collect() = %d objects, want 4", len(collected))
	}

	want := []ObjectContext{
		{FileID: "f1", PageID: "p1", ObjectID: "o1"},
		{FileID: "f1", PageID: "p1", ObjectID: "o2"},
		{FileID: "f1", PageID: "p2", ObjectID: "o3"},
		{FileID: "f2", PageID: "p3", ObjectID: "o4"},
	}
	for i, w := range want {
		if collected[i].Context != w {
			t.Errorf("collected[%d].Context = %+v, want %+v", i, collected[i].Context, w)
		}
	}
}

func TestCollectNoFiltering(t *testing.T) {
	// Hidden and locked objects are still collected; filtering is not
	// the collector's job.
	doc := &Document{
		Files: []File{{
			ID: "f1",
			Pages: []Page{{
				ID: "p1",
				Objects: []DesignObject{
					{ID: "o1", Type: "rectangle", Visible: false},
					{ID: "o2", Type: "rectangle", Locked: true},
					{ID: "o2", Type: "rectangle"}, // duplicate id is preserved too
				},
			}},
		}},
	}

	if got := len(Collect(doc)); got != 3 {
		t.Errorf("Collect() = %d objects, want 3", got)
	}
}

func TestCollectEmpty(t *testing.T) {
	if got := Collect(&Document{}); len(got) != 0 {
		t.Errorf("Collect(empty) = %d objects, want 0", len(got))
	}
	if got := Collect(nil); got != nil {
		t.Errorf("Collect(nil) = %v, want nil", got)
	}
}

func TestCollectPointsAtDocumentObjects(t *testing.T) {
	doc := &Document{
		Files: []File{{
			ID:    "f1",
			Pages: []Page{{ID: "p1", Objects: []DesignObject{{ID: "o1", Type: "text", Name: "title"}}}},
		}},
	}

	collected := Collect(doc)
	if collected[0].Object != &doc.Files[0].Pages[0].Objects[0] {
		t.Error("collected object should alias the document object, not copy it")
	}
}
