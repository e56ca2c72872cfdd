/*

Package logger provides logging functionality to a switchyard app by defining the required behavior in [Logger]
and providing an implementation of it with [YardLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, [YardLogger] accepts a [LogLevel],
and if initialized with [LogLevelWarn],
only [*YardLogger.Warn], [*YardLogger.Error], and [*YardLogger.Fatal] produce messages.

# YardLogger

The [YardLogger] is the implementation of [Logger] returned by the [New] function.
Log messages emitted by it are composed of a few parts:
	- timestamp
	- log level
	- call site
	- message
	- log context

Here's an example:
	2022/04/28 15:55:21 [DEBUG] web/dashboard_handler.go:43 'such fun!' log_context: {"error":"not exist"}

The log context is a JSON-encoded [*LogContext],
including additional data inessential to the message proper.

# SkipLogger

Sometimes, especially with internal packages, the file and line number in a log needs to be configurable.
[SkipLogger] provides additional configuration functionality by setting the number of frames to skip
back in order to reach the desired caller.

*/
package logger
