// Package ports holds the interfaces the notifier's layers meet at.
//
// Inbound: the HTTP handlers call AssignmentService. Outbound: the app layer
// calls TokenStore, DirectoryReader and PushSender, which the store and FCM
// adapters implement. Dispatcher and Directory are themselves exposed as
// Notifier and NameResolver so the assignment service can be tested against
// mocks. Mocks for every interface live in the top-level mocks package.
package ports
