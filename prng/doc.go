/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package prng provides deterministic pseudo-random sources.
//
// A Source is an explicit generator object: it owns its state and is
// advanced only through its methods, so there is no hidden global seed.
// Samplers from the sample package take a Source at construction and
// never seed anything themselves. Identical construction parameters
// always reproduce an identical stream.
//
// Sources are not safe for concurrent use; derive independent streams
// with Derive instead of sharing one.
package prng
