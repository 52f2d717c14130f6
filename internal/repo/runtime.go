// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/dealerdesk/dealerdesk_backend/internal/repo/notification"
	"github.com/dealerdesk/dealerdesk_backend/internal/repo/notificationpref"
	"github.com/dealerdesk/dealerdesk_backend/internal/repo/pushsubscription"
	"github.com/dealerdesk/dealerdesk_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationMixinFields1 := notificationMixin[1].Fields()
	_ = notificationMixinFields1
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields1[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[3].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = notificationDescTitle.Validators[0].(func(string) error)
	// notificationDescLink is the schema descriptor for link field.
	notificationDescLink := notificationFields[5].Descriptor()
	// notification.LinkValidator is a validator for the "link" field. It is called by the builders before save.
	notification.LinkValidator = notificationDescLink.Validators[0].(func(string) error)
	// notificationDescEntityID is the schema descriptor for entity_id field.
	notificationDescEntityID := notificationFields[6].Descriptor()
	// notification.EntityIDValidator is a validator for the "entity_id" field. It is called by the builders before save.
	notification.EntityIDValidator = notificationDescEntityID.Validators[0].(func(string) error)
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[8].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	// notificationDescDeliveredEmail is the schema descriptor for delivered_email field.
	notificationDescDeliveredEmail := notificationFields[10].Descriptor()
	// notification.DefaultDeliveredEmail holds the default value on creation for the delivered_email field.
	notification.DefaultDeliveredEmail = notificationDescDeliveredEmail.Default.(bool)
	// notificationDescDeliveredSms is the schema descriptor for delivered_sms field.
	notificationDescDeliveredSms := notificationFields[11].Descriptor()
	// notification.DefaultDeliveredSms holds the default value on creation for the delivered_sms field.
	notification.DefaultDeliveredSms = notificationDescDeliveredSms.Default.(bool)
	// notificationDescDeliveredBrowser is the schema descriptor for delivered_browser field.
	notificationDescDeliveredBrowser := notificationFields[12].Descriptor()
	// notification.DefaultDeliveredBrowser holds the default value on creation for the delivered_browser field.
	notification.DefaultDeliveredBrowser = notificationDescDeliveredBrowser.Default.(bool)
	// notificationDescDeliveredPush is the schema descriptor for delivered_push field.
	notificationDescDeliveredPush := notificationFields[13].Descriptor()
	// notification.DefaultDeliveredPush holds the default value on creation for the delivered_push field.
	notification.DefaultDeliveredPush = notificationDescDeliveredPush.Default.(bool)
	// notificationDescDeliveredSound is the schema descriptor for delivered_sound field.
	notificationDescDeliveredSound := notificationFields[14].Descriptor()
	// notification.DefaultDeliveredSound holds the default value on creation for the delivered_sound field.
	notification.DefaultDeliveredSound = notificationDescDeliveredSound.Default.(bool)
	// notificationDescExpiresAt is the schema descriptor for expires_at field.
	notificationDescExpiresAt := notificationFields[15].Descriptor()
	// notification.DefaultExpiresAt holds the default value on creation for the expires_at field.
	notification.DefaultExpiresAt = notificationDescExpiresAt.Default.(func() time.Time)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationMixinFields0[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	notificationprefMixin := schema.NotificationPref{}.Mixin()
	notificationprefMixinFields0 := notificationprefMixin[0].Fields()
	_ = notificationprefMixinFields0
	notificationprefMixinFields1 := notificationprefMixin[1].Fields()
	_ = notificationprefMixinFields1
	notificationprefFields := schema.NotificationPref{}.Fields()
	_ = notificationprefFields
	// notificationprefDescCreatedAt is the schema descriptor for created_at field.
	notificationprefDescCreatedAt := notificationprefMixinFields1[0].Descriptor()
	// notificationpref.DefaultCreatedAt holds the default value on creation for the created_at field.
	notificationpref.DefaultCreatedAt = notificationprefDescCreatedAt.Default.(func() time.Time)
	// notificationprefDescUpdatedAt is the schema descriptor for updated_at field.
	notificationprefDescUpdatedAt := notificationprefMixinFields1[1].Descriptor()
	// notificationpref.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	notificationpref.DefaultUpdatedAt = notificationprefDescUpdatedAt.Default.(func() time.Time)
	// notificationpref.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	notificationpref.UpdateDefaultUpdatedAt = notificationprefDescUpdatedAt.UpdateDefault.(func() time.Time)
	// notificationprefDescSoundVolume is the schema descriptor for sound_volume field.
	notificationprefDescSoundVolume := notificationprefFields[2].Descriptor()
	// notificationpref.DefaultSoundVolume holds the default value on creation for the sound_volume field.
	notificationpref.DefaultSoundVolume = notificationprefDescSoundVolume.Default.(float64)
	// notificationpref.SoundVolumeValidator is a validator for the "sound_volume" field. It is called by the builders before save.
	notificationpref.SoundVolumeValidator = func() func(float64) error {
		validators := notificationprefDescSoundVolume.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(sound_volume float64) error {
			for _, fn := range fns {
				if err := fn(sound_volume); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationprefDescRequireInteraction is the schema descriptor for require_interaction field.
	notificationprefDescRequireInteraction := notificationprefFields[3].Descriptor()
	// notificationpref.DefaultRequireInteraction holds the default value on creation for the require_interaction field.
	notificationpref.DefaultRequireInteraction = notificationprefDescRequireInteraction.Default.(bool)
	// notificationprefDescOnlyWhenHidden is the schema descriptor for only_when_hidden field.
	notificationprefDescOnlyWhenHidden := notificationprefFields[4].Descriptor()
	// notificationpref.DefaultOnlyWhenHidden holds the default value on creation for the only_when_hidden field.
	notificationpref.DefaultOnlyWhenHidden = notificationprefDescOnlyWhenHidden.Default.(bool)
	// notificationprefDescID is the schema descriptor for id field.
	notificationprefDescID := notificationprefMixinFields0[0].Descriptor()
	// notificationpref.DefaultID holds the default value on creation for the id field.
	notificationpref.DefaultID = notificationprefDescID.Default.(func() uuid.UUID)
	pushsubscriptionMixin := schema.PushSubscription{}.Mixin()
	pushsubscriptionMixinFields0 := pushsubscriptionMixin[0].Fields()
	_ = pushsubscriptionMixinFields0
	pushsubscriptionMixinFields1 := pushsubscriptionMixin[1].Fields()
	_ = pushsubscriptionMixinFields1
	pushsubscriptionFields := schema.PushSubscription{}.Fields()
	_ = pushsubscriptionFields
	// pushsubscriptionDescCreatedAt is the schema descriptor for created_at field.
	pushsubscriptionDescCreatedAt := pushsubscriptionMixinFields1[0].Descriptor()
	// pushsubscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	pushsubscription.DefaultCreatedAt = pushsubscriptionDescCreatedAt.Default.(func() time.Time)
	// pushsubscriptionDescEndpoint is the schema descriptor for endpoint field.
	pushsubscriptionDescEndpoint := pushsubscriptionFields[1].Descriptor()
	// pushsubscription.EndpointValidator is a validator for the "endpoint" field. It is called by the builders before save.
	pushsubscription.EndpointValidator = pushsubscriptionDescEndpoint.Validators[0].(func(string) error)
	// pushsubscriptionDescP256dh is the schema descriptor for p256dh field.
	pushsubscriptionDescP256dh := pushsubscriptionFields[2].Descriptor()
	// pushsubscription.P256dhValidator is a validator for the "p256dh" field. It is called by the builders before save.
	pushsubscription.P256dhValidator = pushsubscriptionDescP256dh.Validators[0].(func(string) error)
	// pushsubscriptionDescAuth is the schema descriptor for auth field.
	pushsubscriptionDescAuth := pushsubscriptionFields[3].Descriptor()
	// pushsubscription.AuthValidator is a validator for the "auth" field. It is called by the builders before save.
	pushsubscription.AuthValidator = pushsubscriptionDescAuth.Validators[0].(func(string) error)
	// pushsubscriptionDescDeviceLabel is the schema descriptor for device_label field.
	pushsubscriptionDescDeviceLabel := pushsubscriptionFields[4].Descriptor()
	// pushsubscription.DeviceLabelValidator is a validator for the "device_label" field. It is called by the builders before save.
	pushsubscription.DeviceLabelValidator = pushsubscriptionDescDeviceLabel.Validators[0].(func(string) error)
	// pushsubscriptionDescID is the schema descriptor for id field.
	pushsubscriptionDescID := pushsubscriptionMixinFields0[0].Descriptor()
	// pushsubscription.DefaultID holds the default value on creation for the id field.
	pushsubscription.DefaultID = pushsubscriptionDescID.Default.(func() uuid.UUID)
}
