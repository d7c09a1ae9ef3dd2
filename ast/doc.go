// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ast defines the expression nodes of a C translation unit.
//
// Every node is owned by a [Context], which allocates each variant into its
// own arena. Nodes are referred to by small value handles: the type-erased
// [Expr], and the typed views such as [Binary] and [Call] that it can be
// converted to with its As* methods or dispatched on with [Visit].
//
// Nodes are created through [Nodes], which checks the structural contract of
// each variant: required operands are present, belong to the same Context,
// and do not already have a parent. Violating the contract panics. A node's
// result type is given at construction and is not derived here.
//
// Once built, a tree is immutable except for a single [Expr.SetType] per node
// whose type is not derived from its operands,
// and may be read from any number of goroutines.
package ast
