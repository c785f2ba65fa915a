package langlink

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-langlink/pkg/interfaces"
)

type fakeDirectory struct {
	languages map[interfaces.ItemID]string
	groups    map[interfaces.ItemID]interfaces.TranslationGroup
	calls     []string

	getLanguageErr error
	setLanguageErr error
	getGroupErr    error
	saveGroupErr   error
	unavailable    bool
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		languages: map[interfaces.ItemID]string{},
		groups:    map[interfaces.ItemID]interfaces.TranslationGroup{},
	}
}

func (f *fakeDirectory) GetLanguage(_ context.Context, id interfaces.ItemID) (string, error) {
	f.calls = append(f.calls, fmt.Sprintf("get_language:%d", id))
	if f.getLanguageErr != nil {
		return "", f.getLanguageErr
	}
	return f.languages[id], nil
}

func (f *fakeDirectory) SetLanguage(_ context.Context, id interfaces.ItemID, language string) error {
	f.calls = append(f.calls, fmt.Sprintf("set_language:%d:%s", id, language))
	if f.setLanguageErr != nil {
		return f.setLanguageErr
	}
	f.languages[id] = language
	return nil
}

func (f *fakeDirectory) GetTranslationGroup(_ context.Context, id interfaces.ItemID) (interfaces.TranslationGroup, error) {
	f.calls = append(f.calls, fmt.Sprintf("get_group:%d", id))
	if f.getGroupErr != nil {
		return nil, f.getGroupErr
	}
	return f.groups[id], nil
}

func (f *fakeDirectory) SaveTranslationGroup(_ context.Context, group interfaces.TranslationGroup) error {
	f.calls = append(f.calls, "save_group")
	if f.saveGroupErr != nil {
		return f.saveGroupErr
	}
	for _, member := range group {
		f.groups[member] = group.Clone()
	}
	return nil
}

func (f *fakeDirectory) Available() bool {
	return f != nil && !f.unavailable
}

func (f *fakeDirectory) mutations() []string {
	out := []string{}
	for _, call := range f.calls {
		if call == "save_group" || strings.HasPrefix(call, "set_language:") {
			out = append(out, call)
		}
	}
	return out
}

type mapParams map[string]any

func (m mapParams) Has(name string) bool {
	_, ok := m[name]
	return ok
}

func (m mapParams) Get(name string) any {
	return m[name]
}
