// Package domain holds the immutable catalog of primitive actions and
// compound tasks (methods) a planning problem is defined over: the shared,
// read-only data every task network (package htn) references by task-name
// id.
package domain
