// Code generated by ent, DO NOT EDIT.

package runtime

import (
	"time"

	"github.com/anzhiyu-c/tariff-app/ent/envelope"
	"github.com/anzhiyu-c/tariff-app/ent/schema"
	"github.com/anzhiyu-c/tariff-app/ent/setting"
	"github.com/anzhiyu-c/tariff-app/ent/trackedentity"
	"github.com/anzhiyu-c/tariff-app/ent/transaction"
	"github.com/anzhiyu-c/tariff-app/ent/versiongroup"
	"github.com/anzhiyu-c/tariff-app/ent/workbasket"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	envelopeFields := schema.Envelope{}.Fields()
	_ = envelopeFields
	// envelopeDescEnvelopeID is the schema descriptor for envelope_id field.
	envelopeDescEnvelopeID := envelopeFields[1].Descriptor()
	// envelope.EnvelopeIDValidator is a validator for the "envelope_id" field. It is called by the builders before save.
	envelope.EnvelopeIDValidator = func() func(string) error {
		validators := envelopeDescEnvelopeID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(envelope_id string) error {
			for _, fn := range fns {
				if err := fn(envelope_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// envelopeDescXMLFile is the schema descriptor for xml_file field.
	envelopeDescXMLFile := envelopeFields[2].Descriptor()
	// envelope.DefaultXMLFile holds the default value on creation for the xml_file field.
	envelope.DefaultXMLFile = envelopeDescXMLFile.Default.(string)
	// envelopeDescDeleted is the schema descriptor for deleted field.
	envelopeDescDeleted := envelopeFields[3].Descriptor()
	// envelope.DefaultDeleted holds the default value on creation for the deleted field.
	envelope.DefaultDeleted = envelopeDescDeleted.Default.(bool)
	// envelopeDescCreatedAt is the schema descriptor for created_at field.
	envelopeDescCreatedAt := envelopeFields[4].Descriptor()
	// envelope.DefaultCreatedAt holds the default value on creation for the created_at field.
	envelope.DefaultCreatedAt = envelopeDescCreatedAt.Default.(func() time.Time)
	settingMixin := schema.Setting{}.Mixin()
	settingMixinHooks0 := settingMixin[0].Hooks()
	setting.Hooks[0] = settingMixinHooks0[0]
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescConfigKey is the schema descriptor for config_key field.
	settingDescConfigKey := settingFields[0].Descriptor()
	// setting.ConfigKeyValidator is a validator for the "config_key" field. It is called by the builders before save.
	setting.ConfigKeyValidator = func() func(string) error {
		validators := settingDescConfigKey.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(config_key string) error {
			for _, fn := range fns {
				if err := fn(config_key); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// settingDescComment is the schema descriptor for comment field.
	settingDescComment := settingFields[2].Descriptor()
	// setting.CommentValidator is a validator for the "comment" field. It is called by the builders before save.
	setting.CommentValidator = settingDescComment.Validators[0].(func(string) error)
	// settingDescCreatedAt is the schema descriptor for created_at field.
	settingDescCreatedAt := settingFields[3].Descriptor()
	// setting.DefaultCreatedAt holds the default value on creation for the created_at field.
	setting.DefaultCreatedAt = settingDescCreatedAt.Default.(func() time.Time)
	// settingDescUpdatedAt is the schema descriptor for updated_at field.
	settingDescUpdatedAt := settingFields[4].Descriptor()
	// setting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	setting.DefaultUpdatedAt = settingDescUpdatedAt.Default.(func() time.Time)
	// setting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	setting.UpdateDefaultUpdatedAt = settingDescUpdatedAt.UpdateDefault.(func() time.Time)
	trackedentityFields := schema.TrackedEntity{}.Fields()
	_ = trackedentityFields
	// trackedentityDescKind is the schema descriptor for kind field.
	trackedentityDescKind := trackedentityFields[1].Descriptor()
	// trackedentity.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	trackedentity.KindValidator = trackedentityDescKind.Validators[0].(func(string) error)
	// trackedentityDescCreatedAt is the schema descriptor for created_at field.
	trackedentityDescCreatedAt := trackedentityFields[12].Descriptor()
	// trackedentity.DefaultCreatedAt holds the default value on creation for the created_at field.
	trackedentity.DefaultCreatedAt = trackedentityDescCreatedAt.Default.(func() time.Time)
	transactionFields := schema.Transaction{}.Fields()
	_ = transactionFields
	// transactionDescCreatedAt is the schema descriptor for created_at field.
	transactionDescCreatedAt := transactionFields[5].Descriptor()
	// transaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	transaction.DefaultCreatedAt = transactionDescCreatedAt.Default.(func() time.Time)
	versiongroupFields := schema.VersionGroup{}.Fields()
	_ = versiongroupFields
	// versiongroupDescCreatedAt is the schema descriptor for created_at field.
	versiongroupDescCreatedAt := versiongroupFields[2].Descriptor()
	// versiongroup.DefaultCreatedAt holds the default value on creation for the created_at field.
	versiongroup.DefaultCreatedAt = versiongroupDescCreatedAt.Default.(func() time.Time)
	workbasketFields := schema.WorkBasket{}.Fields()
	_ = workbasketFields
	// workbasketDescTitle is the schema descriptor for title field.
	workbasketDescTitle := workbasketFields[1].Descriptor()
	// workbasket.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	workbasket.TitleValidator = func() func(string) error {
		validators := workbasketDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// workbasketDescAuthor is the schema descriptor for author field.
	workbasketDescAuthor := workbasketFields[4].Descriptor()
	// workbasket.AuthorValidator is a validator for the "author" field. It is called by the builders before save.
	workbasket.AuthorValidator = workbasketDescAuthor.Validators[0].(func(string) error)
	// workbasketDescCreatedAt is the schema descriptor for created_at field.
	workbasketDescCreatedAt := workbasketFields[6].Descriptor()
	// workbasket.DefaultCreatedAt holds the default value on creation for the created_at field.
	workbasket.DefaultCreatedAt = workbasketDescCreatedAt.Default.(func() time.Time)
	// workbasketDescUpdatedAt is the schema descriptor for updated_at field.
	workbasketDescUpdatedAt := workbasketFields[7].Descriptor()
	// workbasket.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workbasket.DefaultUpdatedAt = workbasketDescUpdatedAt.Default.(func() time.Time)
	// workbasket.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workbasket.UpdateDefaultUpdatedAt = workbasketDescUpdatedAt.UpdateDefault.(func() time.Time)
}

const (
	Version = "v0.14.4"                                         // Version of ent codegen.
	Sum     = "h1:/DhDraSLXIkBhyiVoJeSshr4ZYi7femzhj6/TckzZuI=" // Sum of ent codegen.
)
