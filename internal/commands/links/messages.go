package links

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	setLanguageMessageType     = "langlink.links.set_language"
	linkTranslationMessageType = "langlink.links.link_translation"
	applyLinksMessageType      = "langlink.links.apply"
)

// SetLanguageCommand stores Language for ItemID. An empty language clears it.
type SetLanguageCommand struct {
	ItemID   int64  `json:"item_id"`
	Language string `json:"language"`
}

// Type implements command.Message.
func (SetLanguageCommand) Type() string { return setLanguageMessageType }

// TargetItem returns the item the command acts on.
func (cmd SetLanguageCommand) TargetItem() int64 { return cmd.ItemID }

// Validate implements command.Message.
func (cmd SetLanguageCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.ItemID, validation.Required, validation.Min(int64(1))),
	)
}

// LinkTranslationCommand adds ItemID to the group of TranslationOf under
// ItemID's stored language.
type LinkTranslationCommand struct {
	ItemID        int64 `json:"item_id"`
	TranslationOf int64 `json:"translation_of"`
}

// Type implements command.Message.
func (LinkTranslationCommand) Type() string { return linkTranslationMessageType }

func (cmd LinkTranslationCommand) TargetItem() int64 { return cmd.ItemID }

// Validate implements command.Message.
func (cmd LinkTranslationCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.ItemID, validation.Required, validation.Min(int64(1))),
		validation.Field(&cmd.TranslationOf, validation.Required, validation.Min(int64(1))),
	)
}

// ApplyLinksCommand runs the same two steps as the REST insert hook.
// Lang and TranslationOf follow the request parameter rules: nil means absent.
type ApplyLinksCommand struct {
	ItemID        int64   `json:"item_id"`
	Lang          *string `json:"lang,omitempty"`
	TranslationOf any     `json:"translation_of,omitempty"`
	Creating      bool    `json:"creating,omitempty"`
}

// Type implements command.Message.
func (ApplyLinksCommand) Type() string { return applyLinksMessageType }

func (cmd ApplyLinksCommand) TargetItem() int64 { return cmd.ItemID }

// Validate implements command.Message.
func (cmd ApplyLinksCommand) Validate() error {
	errs := validation.Errors{}
	if cmd.ItemID <= 0 {
		errs["item_id"] = validation.NewError("langlink.links.apply.item_id_required", "item id must be positive")
	}
	if cmd.Lang == nil && cmd.TranslationOf == nil {
		errs["lang"] = validation.NewError("langlink.links.apply.params_required", "lang or translation_of is required")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
