// Package logger wraps zap with a global sugared logger and context helpers.
//
// Services never hold a logger field: they receive a context and extract the
// logger from it (FromContext), so request-scoped fields such as request_id and
// user_id added with WithKV follow the call chain into stores and senders.
package logger
