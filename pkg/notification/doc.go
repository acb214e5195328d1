// Package notification renders and delivers user-facing notifications over
// pluggable channels.
//
// Notification content lives in markdown templates with YAML frontmatter:
//
//	---
//	subject: Welcome, {user.name}!
//	channels: [email]
//	---
//	Hi {user.name},
//
//	your account on **{tenant.name}** is ready.
//
// Placeholders are `{path}` expressions resolved against the recipient and
// the notification payload (see pkg/placeholder), so templates reach nested
// values like {order.items.0.title}. The markdown body is converted to HTML
// for channels that support it.
//
// A Notifier loads templates from an fs.FS and fans out to registered
// channels:
//
//	notifier, err := notification.NewNotifier(templatesFS,
//		notification.WithChannel(notification.NewEmailChannel(emailCfg)),
//		notification.WithChannel(notification.NewLogChannel(log)),
//	)
//
//	err = notifier.Send(ctx, recipient, notification.Notification{
//		Template: "welcome",
//		Data:     map[string]any{"tenant": map[string]any{"name": "Acme"}},
//	})
//
// Broadcast delivers to many recipients with bounded concurrency.
package notification
