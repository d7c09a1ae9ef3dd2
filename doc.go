// Package cexpr provides the entry point for the expression core of a C
// front end: the node model for C expressions and the semantic queries that
// a type checker asks of it.
//
// The various sub-packages represent the pieces of a translation unit and
// the questions that can be asked about it. Those pieces follow:
//  1. Types and target layout.
//     Also see: ctype.Context
//  2. Declarations of variables, functions, enumerators, fields and labels.
//     Also see: decl.Table
//  3. Expression trees, built bottom-up with one constructor per variant.
//     Also see: ast.Nodes
//  4. Semantic queries: lvalue and modifiable-lvalue classification,
//     null pointer constants, and integer constant expression evaluation.
//     Also see: sema.Analyzer
//  5. Diagnostics about expressions, and rendering them against source.
//     Also see: check.Checker, report.Renderer
//
// A [Unit] bundles all of these for a single translation unit. Expression
// statements can be checked in parallel, so checking a large unit takes
// advantage of multiple CPU cores.
//
// There is no C parser here: a parser (or a test) builds trees through
// [ast.Nodes], giving every node its result type and source locations.
package cexpr
